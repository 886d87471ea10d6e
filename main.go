package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tmux-popup-launcher/internal/app"
	"github.com/atomicstack/tmux-popup-launcher/internal/config"
	"github.com/atomicstack/tmux-popup-launcher/internal/index"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// runApp is replaced in tests so run can be exercised without a terminal.
var runApp = app.Run

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr))
}

func run(args, environ []string, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg, stdoutSize()))

	if err := runApp(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRuntime
	}
	return exitOK
}

// popupSize is the terminal the popup was opened in, when stdout is one.
type popupSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func stdoutSize() *popupSize {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return nil
	}
	return &popupSize{Width: width, Height: height}
}

// startupTracePayload records what the launcher will index and how it will
// launch, so a trace explains an empty list or a failed spawn.
func startupTracePayload(cfg config.Config, size *popupSize) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":       cfg.Args,
		"flags":      cfg.Flags,
		"mode":       string(cfg.App.Mode),
		"terminal":   cfg.App.Terminal,
		"searchDirs": index.Dirs(cfg.App.SearchPath),
		"trace":      cfg.Logging.Trace,
		"logFile":    logging.Path(),
	}
	if cfg.App.SocketPath != "" {
		payload["socket"] = cfg.App.SocketPath
	}
	if size != nil {
		payload["tty"] = *size
	}
	return payload
}
