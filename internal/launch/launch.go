// Package launch turns a confirmed candidate into a spawned process.
package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
)

var (
	// ErrNoCandidate is returned when the selection does not point at a
	// candidate, for example after the list shrank to nothing.
	ErrNoCandidate = errors.New("no candidate selected")

	// ErrNoTerminal is returned in terminal mode when no terminal command is
	// configured.
	ErrNoTerminal = errors.New("no terminal command configured")
)

// Mode selects how the chosen program is started.
type Mode string

const (
	ModeTerminal Mode = "terminal"
	ModeDirect   Mode = "direct"
	ModeTmux     Mode = "tmux"
)

// DefaultTerminal is the terminal command used when none is configured.
var DefaultTerminal = []string{"alacritty", "-e"}

// ParseMode validates a mode name. An empty string selects ModeTerminal.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeTerminal:
		return ModeTerminal, nil
	case ModeDirect:
		return ModeDirect, nil
	case ModeTmux:
		return ModeTmux, nil
	}
	return "", fmt.Errorf("unknown launch mode %q (want terminal, direct or tmux)", value)
}

// Request names the program the user confirmed.
type Request struct {
	Program string
}

// Command is the argv handed to a Spawner.
type Command struct {
	Name string
	Args []string
	Env  []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Resolve picks the candidate under the selection.
func Resolve(candidates []string, selection int) (Request, error) {
	if selection < 0 || selection >= len(candidates) {
		return Request{}, ErrNoCandidate
	}
	return Request{Program: candidates[selection]}, nil
}

// Spawner starts a command without waiting for it.
type Spawner interface {
	Spawn(Command) error
}

// Config describes how requests are turned into commands.
type Config struct {
	Mode       Mode
	Terminal   []string
	SocketPath string
}

// Dispatcher builds and spawns launch commands.
type Dispatcher struct {
	cfg     Config
	spawner Spawner
}

// NewDispatcher returns a dispatcher using spawner, or ExecSpawner when nil.
func NewDispatcher(cfg Config, spawner Spawner) *Dispatcher {
	if cfg.Mode == "" {
		cfg.Mode = ModeTerminal
	}
	if spawner == nil {
		spawner = ExecSpawner{}
	}
	cfg.Terminal = append([]string(nil), cfg.Terminal...)
	return &Dispatcher{cfg: cfg, spawner: spawner}
}

// Mode reports the configured launch mode.
func (d *Dispatcher) Mode() Mode {
	return d.cfg.Mode
}

// Command builds the argv for req under the configured mode.
func (d *Dispatcher) Command(req Request) (Command, error) {
	program := strings.TrimSpace(req.Program)
	if program == "" {
		return Command{}, ErrNoCandidate
	}
	switch d.cfg.Mode {
	case ModeDirect:
		return Command{Name: program}, nil
	case ModeTmux:
		return tmuxCommand(d.cfg.SocketPath, "new-window", program), nil
	case ModeTerminal:
		if len(d.cfg.Terminal) == 0 || strings.TrimSpace(d.cfg.Terminal[0]) == "" {
			return Command{}, ErrNoTerminal
		}
		args := make([]string, 0, len(d.cfg.Terminal))
		args = append(args, d.cfg.Terminal[1:]...)
		args = append(args, program)
		return Command{Name: d.cfg.Terminal[0], Args: args}, nil
	}
	return Command{}, fmt.Errorf("unknown launch mode %q", d.cfg.Mode)
}

// Launch builds the command for req and spawns it.
func (d *Dispatcher) Launch(req Request) error {
	cmd, err := d.Command(req)
	if err != nil {
		return err
	}
	events.Command.Spawn(cmd.Name, cmd.Args)
	if err := d.spawner.Spawn(cmd); err != nil {
		return fmt.Errorf("launch %s: %w", req.Program, err)
	}
	return nil
}
