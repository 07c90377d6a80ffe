// Package shell runs command strings through the platform command
// interpreter: sh -c on Unix-like systems, cmd /C on Windows.
package shell

import "os/exec"

// Command builds an exec.Cmd that passes the command string to the
// platform shell. The returned Cmd has not been started; callers wire
// up pipes and run it.
func Command(command string) *exec.Cmd {
	return exec.Command(shellName, shellFlag, command)
}
