package command

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-launcher/internal/launch"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Launcher is the part of launch.Dispatcher the bus needs.
type Launcher interface {
	Launch(launch.Request) error
	Mode() launch.Mode
}

// Result reports the outcome of a launch back to the model.
type Result struct {
	Program string
	Info    string
	Err     error
}

// Bus runs launch requests as Bubble Tea commands.
type Bus struct {
	launcher Launcher
}

// New initialises a command bus around launcher.
func New(launcher Launcher) *Bus {
	return &Bus{launcher: launcher}
}

// Execute wraps a launch into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req launch.Request) tea.Cmd {
	if b == nil || b.launcher == nil {
		return nil
	}
	events.Command.Queue(req.Program, string(b.launcher.Mode()))
	return func() tea.Msg {
		var msg Result
		if err := b.launcher.Launch(req); err != nil {
			msg = Result{Program: req.Program, Err: err}
		} else {
			msg = Result{Program: req.Program, Info: fmt.Sprintf("Launched %s", req.Program)}
		}
		events.Command.Result(req.Program, fmt.Sprintf("%T", msg))
		return msg
	}
}
