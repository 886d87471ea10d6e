package app

import (
	"context"
	"errors"

	"github.com/atomicstack/tmux-popup-launcher/internal/index"
	"github.com/atomicstack/tmux-popup-launcher/internal/launch"
	"github.com/atomicstack/tmux-popup-launcher/internal/ui"
	"github.com/atomicstack/tmux-popup-launcher/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Mode       launch.Mode
	Terminal   []string
	SearchPath string
	SocketPath string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := launch.NewDispatcher(launch.Config{
		Mode:       cfg.Mode,
		Terminal:   cfg.Terminal,
		SocketPath: launch.ResolveSocketPath(cfg.SocketPath),
	}, nil)
	model := ui.NewModel(cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, newLoader(ctx, cfg.SearchPath), command.New(dispatcher))
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newLoader scans searchPath. Cancelling ctx abandons a scan still running
// when the popup closes.
func newLoader(ctx context.Context, searchPath string) ui.IndexLoader {
	dirs := index.Dirs(searchPath)
	return func() *index.Index {
		return index.Scan(ctx, dirs)
	}
}
