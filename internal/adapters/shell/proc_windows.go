//go:build windows

package shell

import (
	"errors"
	"os"
	"syscall"
)

func newSysProcAttr() *syscall.SysProcAttr {
	return nil
}

// terminateGroup kills the process outright; windows has no SIGTERM to deliver.
func terminateGroup(pid int, kill func() error) error {
	return killGroup(pid, kill)
}

func killGroup(_ int, kill func() error) error {
	if err := kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
