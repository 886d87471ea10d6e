package ui

import (
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const promptPlaceholder = "(type a program name)"

func (m *Model) updatePromptCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.promptCursor, cmd = m.promptCursor.Update(msg)
	return cmd
}

func (m *Model) notePromptCursorChange(before int) {
	if before != m.buffer.Cursor() {
		m.promptCursorDirty = true
	}
}

// handleTextInput applies prompt edits. It reports whether the key was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	before := m.buffer.Cursor()
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.buffer.DeleteBackward() {
			return false
		}
		m.notePromptCursorChange(before)
		m.clearMessages()
		events.Buffer.Backspace(m.buffer.Text(), m.buffer.Cursor())
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		// a single key message may carry several runes (fast typing or a
		// paste); all of them are applied in order
		if !m.buffer.InsertText(string(msg.Runes)) {
			return false
		}
		m.notePromptCursorChange(before)
		m.clearMessages()
		events.Buffer.Insert(m.buffer.Text(), m.buffer.Cursor())
		return true
	case tea.KeySpace:
		m.buffer.Insert(' ')
		m.notePromptCursorChange(before)
		m.clearMessages()
		events.Buffer.Insert(m.buffer.Text(), m.buffer.Cursor())
		return true
	case tea.KeyLeft:
		if !m.buffer.MoveLeft() {
			return false
		}
		m.notePromptCursorChange(before)
		events.Buffer.Cursor(m.buffer.Cursor())
		return true
	case tea.KeyRight:
		if !m.buffer.MoveRight() {
			return false
		}
		m.notePromptCursorChange(before)
		events.Buffer.Cursor(m.buffer.Cursor())
		return true
	}
	return false
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	m.forceClearInfo()
}

// promptLine renders the marker, the buffer and the caret.
func (m *Model) promptLine() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.promptCursor.Style = styles.Cursor.Copy()
	}
	if styles.Prompt != nil {
		m.promptCursor.TextStyle = styles.Prompt.Copy()
	} else {
		m.promptCursor.TextStyle = lipgloss.Style{}
	}
	marker := render(styles.PromptMarker, "» ")

	runes := []rune(m.buffer.Text())
	if len(runes) == 0 {
		placeholder := []rune(promptPlaceholder)
		if styles.Placeholder != nil {
			m.promptCursor.TextStyle = styles.Placeholder.Copy()
		}
		caret := m.renderPromptCursor(string(placeholder[0]))
		return marker + caret + render(styles.Placeholder, string(placeholder[1:]))
	}
	pos := m.buffer.Cursor()
	before := render(styles.Prompt, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Prompt, string(runes[pos+1:]))
	}
	return marker + before + m.renderPromptCursor(caretRune) + after
}

func (m *Model) renderPromptCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.promptCursor.SetChar(char)

	base := m.promptCursor.TextStyle.Copy().Inline(true)
	if m.promptCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
