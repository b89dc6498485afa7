// Package process provides process-tree kill and process-table scan
// helpers used to manage the external conversion engine.
package process

import (
	"os"
	"strings"

	gops "github.com/shirou/gopsutil/v4/process"
)

// FindMatching returns the PIDs of all processes whose command line
// contains every one of the given substrings. The calling process is
// never included.
func FindMatching(substrings ...string) ([]int32, error) {
	procs, err := gops.Processes()
	if err != nil {
		return nil, err
	}

	self := int32(os.Getpid())

	var pids []int32
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		cmdline, err := p.Cmdline()
		if err != nil || cmdline == "" {
			// Process may have exited, or we lack permission to inspect it.
			continue
		}
		if containsAll(cmdline, substrings) {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}

// KillMatching force-kills every process whose command line contains all
// of the given substrings. It returns the number of processes killed.
// Kill errors on individual processes are ignored: the target may already
// be gone, and the caller verifies the port is free by probing it.
func KillMatching(substrings ...string) (int, error) {
	pids, err := FindMatching(substrings...)
	if err != nil {
		return 0, err
	}

	killed := 0
	for _, pid := range pids {
		p, err := gops.NewProcess(pid)
		if err != nil {
			continue
		}
		if err := p.Kill(); err == nil {
			killed++
		}
	}
	return killed, nil
}

// containsAll reports whether s contains all substrings.
func containsAll(s string, substrings []string) bool {
	for _, sub := range substrings {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
