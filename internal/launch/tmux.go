package launch

import (
	"os"
	"path/filepath"
	"strings"
)

func tmuxArgs(socket string, extra ...string) []string {
	args := make([]string, 0, len(extra)+2)
	if trimmed := strings.TrimSpace(socket); trimmed != "" {
		args = append(args, "-S", trimmed)
	}
	args = append(args, extra...)
	return args
}

func tmuxCommand(socket string, extra ...string) Command {
	cmd := Command{Name: "tmux", Args: tmuxArgs(socket, extra...)}
	if dir := socketDir(socket); dir != "" {
		cmd.Env = []string{"TMUX_TMPDIR=" + dir}
	}
	return cmd
}

func socketDir(socket string) string {
	trimmed := strings.TrimSpace(socket)
	if trimmed == "" {
		return ""
	}
	return filepath.Dir(trimmed)
}

// ResolveSocketPath picks the tmux server for tmux mode: an explicit value
// wins, then the server named by $TMUX. An empty result lets tmux use its
// default socket.
func ResolveSocketPath(flagValue string) string {
	if trimmed := strings.TrimSpace(flagValue); trimmed != "" {
		return trimmed
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0]
		}
	}
	return ""
}
