//go:build windows

package pptx2pdf

import (
	"errors"
	"os"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

// terminate has no graceful equivalent on Windows; callers escalate to
// the process-group kill.
func terminate(_ *os.Process) error {
	return errors.New("graceful termination not supported on windows")
}
