//go:build linux

package shell

import (
	"os/exec"
	"runtime"
	"sync"
	"syscall"
)

func setDeathSignal(attr *syscall.SysProcAttr) {
	if attr == nil {
		return
	}
	attr.Pdeathsig = syscall.SIGTERM
}

// Pdeathsig fires when the forking thread exits, not the process. Children
// are forked from one goroutine that stays locked to its thread for the life
// of the process.
var (
	spawnOnce  sync.Once
	spawnQueue chan func()
)

func onSpawnThread(fn func()) {
	spawnOnce.Do(func() {
		spawnQueue = make(chan func())
		go func() {
			runtime.LockOSThread()
			for f := range spawnQueue {
				f()
			}
		}()
	})

	done := make(chan struct{})
	spawnQueue <- func() {
		defer close(done)
		fn()
	}
	<-done
}

func startProcess(cmd *exec.Cmd) error {
	var err error
	onSpawnThread(func() { err = cmd.Start() })
	return err
}
