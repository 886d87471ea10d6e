package launch

import (
	"os"
	"os/exec"
)

// ExecSpawner starts commands with os/exec, detached from the launcher so
// they outlive it.
type ExecSpawner struct{}

// Spawn starts cmd and releases it. The launcher never waits for the child
// or reads its output.
func (ExecSpawner) Spawn(c Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	return nil
}
