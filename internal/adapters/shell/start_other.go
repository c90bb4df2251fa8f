//go:build !linux

package shell

import "os/exec"

func startProcess(cmd *exec.Cmd) error {
	return cmd.Start()
}
