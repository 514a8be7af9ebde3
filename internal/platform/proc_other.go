//go:build !unix

package platform

import "os/exec"

func startInGroup(*exec.Cmd) {}

func killGroup(cmd *exec.Cmd) error {
	return cmd.Process.Kill()
}
