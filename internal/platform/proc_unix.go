//go:build unix

package platform

import (
	"os/exec"
	"syscall"
)

// startInGroup puts the inhibit tool in its own process group so that any
// helper it forks is released together with it
func startInGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killGroup terminates the process group led by cmd
func killGroup(cmd *exec.Cmd) error {
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
}
