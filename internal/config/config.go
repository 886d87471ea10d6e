package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-popup-launcher/internal/app"
	"github.com/atomicstack/tmux-popup-launcher/internal/launch"
	"github.com/google/shlex"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMode       = "TMUX_POPUP_LAUNCHER_MODE"
	envTerminal   = "TMUX_POPUP_LAUNCHER_TERMINAL"
	envSearchPath = "TMUX_POPUP_LAUNCHER_PATH"
	envSocketPath = "TMUX_POPUP_LAUNCHER_SOCKET"
	envWidth      = "TMUX_POPUP_LAUNCHER_WIDTH"
	envHeight     = "TMUX_POPUP_LAUNCHER_HEIGHT"
	envShowFooter = "TMUX_POPUP_LAUNCHER_FOOTER"
	envVerbose    = "TMUX_POPUP_LAUNCHER_VERBOSE"
	envTrace      = "TMUX_POPUP_LAUNCHER_TRACE"
	envLogFile    = "TMUX_POPUP_LAUNCHER_LOG_FILE"
)

// LoadArgs parses configuration from CLI arguments and environment
// variables. Flags win over the environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-popup-launcher", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	modeName := fs.String("mode", envOrDefault(env, envMode, string(launch.ModeTerminal)), "launch mode: terminal, direct or tmux")
	terminal := fs.String("terminal", envOrDefault(env, envTerminal, strings.Join(launch.DefaultTerminal, " ")), "terminal command the program is appended to in terminal mode")
	searchPath := fs.String("path", envOrDefault(env, envSearchPath, env["PATH"]), "search path to index (defaults to $PATH)")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket used in tmux mode")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show index and launch messages")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	terminalArgv, err := shlex.Split(*terminal)
	if err != nil {
		return Config{}, fmt.Errorf("parse terminal command %q: %w", *terminal, err)
	}
	mode, err := launch.ParseMode(*modeName)
	if err != nil {
		// left for Validate to report
		mode = launch.Mode(*modeName)
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Mode:       mode,
			Terminal:   terminalArgv,
			SearchPath: *searchPath,
			SocketPath: *socket,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"mode":     *modeName,
			"terminal": *terminal,
			"path":     *searchPath,
			"socket":   *socket,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	mode, err := launch.ParseMode(string(cfg.App.Mode))
	if err != nil {
		return err
	}
	if mode == launch.ModeTerminal && len(cfg.App.Terminal) == 0 {
		return fmt.Errorf("terminal mode needs a terminal command: %w", launch.ErrNoTerminal)
	}
	return nil
}
