package ui

import (
	"context"
	"testing"

	"github.com/atomicstack/tmux-popup-launcher/internal/index"
	"github.com/atomicstack/tmux-popup-launcher/internal/launch"
	"github.com/atomicstack/tmux-popup-launcher/internal/testutil"
	"github.com/atomicstack/tmux-popup-launcher/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnRecorder struct {
	commands []launch.Command
}

func (s *spawnRecorder) Spawn(cmd launch.Command) error {
	s.commands = append(s.commands, cmd)
	return nil
}

func testIndex(names ...string) *index.Index {
	return index.New(names...)
}

func newScannedHarness(t *testing.T, cfg launch.Config, spawner launch.Spawner, dirs ...string) *Harness {
	t.Helper()
	loader := func() *index.Index {
		return index.Scan(context.Background(), dirs)
	}
	dispatcher := launch.NewDispatcher(cfg, spawner)
	h := NewHarness(NewModel(40, 10, true, false, loader, command.New(dispatcher)))
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.LoadIndex()
	return h
}

func TestScannedPathLaunchesInTerminal(t *testing.T) {
	bin := testutil.SearchDir(t, "vim", "vimdiff", "view")
	other := testutil.SearchDir(t, "vi")
	testutil.Plain(t, bin, "virc")

	spawner := &spawnRecorder{}
	h := newScannedHarness(t, launch.Config{Mode: launch.ModeTerminal, Terminal: []string{"xterm", "-e"}}, spawner, bin, other)

	h.Type("vi")
	require.Equal(t, []string{"vi", "vim", "view", "vimdiff"}, h.Model().Candidates())

	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, h.Quit())
	require.Len(t, spawner.commands, 1)
	assert.Equal(t, "xterm", spawner.commands[0].Name)
	assert.Equal(t, []string{"-e", "vim"}, spawner.commands[0].Args)
}

func TestScannedPathLaunchesInTmux(t *testing.T) {
	bin := testutil.SearchDir(t, "htop")
	spawner := &spawnRecorder{}
	h := newScannedHarness(t, launch.Config{Mode: launch.ModeTmux, SocketPath: "/tmp/tmux-1000/default"}, spawner, bin)

	h.Type("ht")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, spawner.commands, 1)
	assert.Equal(t, "tmux", spawner.commands[0].Name)
	assert.Equal(t, []string{"-S", "/tmp/tmux-1000/default", "new-window", "htop"}, spawner.commands[0].Args)
	assert.True(t, h.Quit())
}

func TestMissingTerminalKeepsPopupOpen(t *testing.T) {
	bin := testutil.SearchDir(t, "htop")
	spawner := &spawnRecorder{}
	h := newScannedHarness(t, launch.Config{Mode: launch.ModeTerminal, Terminal: []string{}}, spawner, bin)

	h.Type("htop")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, h.Quit(), "popup stays open")
	assert.Empty(t, spawner.commands)
	assert.Equal(t, launch.ErrNoTerminal.Error(), h.Model().errMsg)

	// the user can edit and retry after an error
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, h.Model().errMsg)
}

func TestEscapeAfterTypingLaunchesNothing(t *testing.T) {
	bin := testutil.SearchDir(t, "htop")
	spawner := &spawnRecorder{}
	h := newScannedHarness(t, launch.Config{Mode: launch.ModeDirect}, spawner, bin)

	h.Type("h")
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, h.Quit())
	assert.Empty(t, spawner.commands)
}
