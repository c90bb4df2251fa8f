//go:build !windows

package shell

import (
	"errors"
	"syscall"
)

func newSysProcAttr() *syscall.SysProcAttr {
	attr := &syscall.SysProcAttr{Setpgid: true}
	setDeathSignal(attr)
	return attr
}

// terminateGroup sends SIGTERM to the group led by pid.
func terminateGroup(pid int, _ func() error) error {
	return signalGroup(pid, syscall.SIGTERM)
}

func killGroup(pid int, _ func() error) error {
	return signalGroup(pid, syscall.SIGKILL)
}

func signalGroup(pid int, sig syscall.Signal) error {
	if pid <= 0 {
		return nil
	}
	err := syscall.Kill(-pid, sig)
	if errors.Is(err, syscall.ESRCH) {
		return nil
	}
	return err
}
