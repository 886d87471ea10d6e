package ui

import (
	"github.com/atomicstack/tmux-popup-launcher/internal/launch"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m.handleCloseKey()
	}
	if m.launching {
		return nil
	}
	switch keyMsg.String() {
	case "enter":
		return m.handleEnterKey()
	case "up", "ctrl+p", "shift+tab":
		m.moveSelectionUp()
		return nil
	case "down", "ctrl+n", "tab":
		m.moveSelectionDown()
		return nil
	}
	m.handleTextInput(keyMsg)
	return nil
}

func (m *Model) handleCloseKey() tea.Cmd {
	events.App.Exit("close")
	return tea.Quit
}

// handleEnterKey launches the highlighted candidate. Without one (empty list,
// index still loading) it only leaves a hint.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		m.setInfo("Still indexing executables…")
		return nil
	}
	req, err := launch.Resolve(m.candidates, m.selection.Index())
	if err != nil {
		events.Action.NoCandidate(m.buffer.Text(), m.selection.Index(), len(m.candidates))
		m.setInfo("Nothing to launch.")
		return nil
	}
	cmd := m.bus.Execute(req)
	if cmd == nil {
		return nil
	}
	m.launching = true
	m.pending = req.Program
	m.clearMessages()
	return cmd
}

func (m *Model) moveSelectionUp() {
	if m.selection.MoveUp() {
		events.UI.Selection(m.selection.Index(), m.selectedCandidate())
	}
}

func (m *Model) moveSelectionDown() {
	if m.selection.MoveDown(len(m.candidates)) {
		events.UI.Selection(m.selection.Index(), m.selectedCandidate())
	}
}
