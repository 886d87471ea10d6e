//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so closing the popup does not
// deliver SIGHUP to it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
