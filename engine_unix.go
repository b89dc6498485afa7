//go:build !windows

package pptx2pdf

import (
	"os"
	"syscall"
)

// sysProcAttr places the engine in its own process group so the whole
// tree can be killed on teardown.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// terminate asks the engine to exit gracefully.
func terminate(p *os.Process) error {
	return p.Signal(syscall.SIGTERM)
}
