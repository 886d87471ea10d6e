package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/index"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/atomicstack/tmux-popup-launcher/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// indexLoadedMsg carries the finished executable index.
type indexLoadedMsg struct {
	index   *index.Index
	elapsed time.Duration
}

func loadIndexCmd(loader IndexLoader) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		idx := loader()
		return indexLoadedMsg{index: idx, elapsed: time.Since(start)}
	}
}

func (m *Model) handleIndexLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(indexLoadedMsg)
	if !ok {
		return nil
	}
	m.index = loaded.index
	m.loading = false
	if m.verbose {
		m.setInfo(fmt.Sprintf("Indexed %d executables in %s", m.index.Len(), loaded.elapsed.Round(time.Millisecond)))
	}
	return nil
}

func (m *Model) handleLaunchResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.launching = false
	m.pending = ""
	if result.Err != nil {
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	m.launched = result.Program
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	events.Action.Success(result.Info)
	events.App.Exit("launch")
	return tea.Quit
}
