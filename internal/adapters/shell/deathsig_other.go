//go:build !linux && !windows

package shell

import "syscall"

func setDeathSignal(_ *syscall.SysProcAttr) {}
