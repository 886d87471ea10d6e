package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "↑/↓ move  enter launch  esc quit"

// minViewHeight fits the prompt, one candidate, the overflow marker and the
// status line.
const minViewHeight = 4

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI escapes (the prompt)
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 12)

	switch {
	case m.loading:
		lines = append(lines, styledLine{text: "Indexing executables…", style: styles.Loading})
	case m.launching:
		lines = append(lines, styledLine{text: fmt.Sprintf("Launching %s…", m.pending), style: styles.Loading})
	case len(m.candidates) == 0:
		msg := "(no executables found)"
		if text := m.buffer.Text(); text != "" {
			msg = fmt.Sprintf("No matches for %q", text)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	default:
		for i, name := range m.candidates {
			lines = append(lines, m.buildCandidateLine(name, i, m.width))
		}
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	// the prompt and status rows are never trimmed
	if height := m.viewHeight(); height > 0 {
		lines = limitHeight(lines, height-2, m.width)
	}

	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	rows := make([]styledLine, 0, len(lines)+2)
	rows = append(rows, styledLine{text: m.promptLine(), raw: true})
	rows = append(rows, lines...)
	rows = append(rows, status)
	return renderLines(applyWidth(rows, m.width))
}

// viewHeight returns the row budget, raised to minViewHeight when a smaller
// height is set. Zero means unlimited.
func (m *Model) viewHeight() int {
	if m.height <= 0 {
		return 0
	}
	if m.height < minViewHeight {
		return minViewHeight
	}
	return m.height
}

// buildCandidateLine renders one candidate row. When width > 0 the row is
// padded so the selected row's background spans the popup.
func (m *Model) buildCandidateLine(name string, idx, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Candidate
	indicatorStyle := styles.Indicator
	if idx == m.selection.Index() {
		indicatorStyle = styles.SelectedIndicator
		lineStyle = styles.SelectedCandidate
	}
	fullText := indicator + " " + name
	if width > 0 {
		if pad := width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width display cells, ending in an ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
