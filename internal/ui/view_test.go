package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainLines(view string) []string {
	lines := strings.Split(ansi.Strip(view), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func TestViewShowsLoadingState(t *testing.T) {
	m := NewModel(0, 0, false, false, nil, nil)
	m.loading = true
	assert.Contains(t, ansi.Strip(m.View()), "Indexing executables")
}

func TestViewListsCandidatesInRankOrder(t *testing.T) {
	h := NewHarness(newTestModel(&recordingLauncher{}, "less", "ls", "lua", "vim"))
	h.Type("l")

	lines := plainLines(h.View())

	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "» l"), "prompt first, got %q", lines[0])
	assert.Equal(t, []string{"▌ ls", "▌ lua", "▌ less"}, lines[1:4])
}

func TestViewShowsAtMostFiveCandidates(t *testing.T) {
	h := NewHarness(newTestModel(&recordingLauncher{}, "a1", "a2", "a3", "a4", "a5", "a6", "a7"))
	h.Type("a")
	rows := 0
	for _, line := range plainLines(h.View()) {
		if strings.HasPrefix(line, "▌ ") {
			rows++
		}
	}
	assert.Equal(t, 5, rows)
}

func TestViewShowsNoMatches(t *testing.T) {
	h := NewHarness(newTestModel(&recordingLauncher{}, "vim"))
	h.Type("xy")
	assert.Contains(t, ansi.Strip(h.View()), `No matches for "xy"`)
}

func TestViewShowsEmptyIndex(t *testing.T) {
	m := newTestModel(&recordingLauncher{})
	assert.Contains(t, ansi.Strip(m.View()), "(no executables found)")
}

func TestViewShowsErrorOnStatusLine(t *testing.T) {
	m := newTestModel(&recordingLauncher{}, "vim")
	m.errMsg = "launch vim: boom"
	lines := plainLines(m.View())
	assert.Equal(t, "Error: launch vim: boom", lines[len(lines)-1])
}

func TestViewFooterToggle(t *testing.T) {
	m := newTestModel(&recordingLauncher{}, "vim")
	assert.NotContains(t, ansi.Strip(m.View()), footerHint)
	m.showFooter = true
	assert.Contains(t, ansi.Strip(m.View()), footerHint)
}

func TestViewRespectsHeight(t *testing.T) {
	h := NewHarness(NewModel(0, 5, false, false, nil, nil))
	h.Send(indexLoadedMsg{index: testIndex("a1", "a2", "a3", "a4", "a5")})

	lines := plainLines(h.View())

	assert.Equal(t, []string{"» (type a program name)", "▌ a1", "▌ a2", "…", ""}, lines)
}

func TestViewKeepsPromptAtSmallHeights(t *testing.T) {
	for _, height := range []int{1, 2, 3, minViewHeight} {
		m := NewModel(40, height, false, false, nil, nil)
		h := NewHarness(m)
		h.Send(indexLoadedMsg{index: testIndex("vim", "vi", "view")})
		h.Type("v")

		lines := plainLines(h.View())

		require.Len(t, lines, minViewHeight, "height %d", height)
		assert.Equal(t, "» v", lines[0], "height %d keeps the prompt", height)
		assert.Equal(t, "▌ vi", lines[1], "height %d shows the first candidate", height)
		assert.Equal(t, "…", lines[2], "height %d marks the overflow", height)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	h := NewHarness(NewModel(12, 0, false, false, nil, nil))
	h.Send(indexLoadedMsg{index: testIndex("a-very-long-program-name")})
	for _, line := range strings.Split(h.View(), "\n") {
		plain := ansi.Strip(line)
		assert.LessOrEqual(t, runewidth.StringWidth(plain), 12, "line %q", plain)
	}
}

func TestSelectedRowIsPadded(t *testing.T) {
	m := newTestModel(&recordingLauncher{}, "vim")
	line := m.buildCandidateLine("vim", 0, 10)
	assert.Equal(t, 10, runewidth.StringWidth(line.text))
	assert.Same(t, styles.SelectedCandidate, line.style)

	other := m.buildCandidateLine("vi", 1, 0)
	assert.Same(t, styles.Candidate, other.style)
}

func TestTruncateText(t *testing.T) {
	got := truncateText("launcher", 4)
	assert.Equal(t, 4, runewidth.StringWidth(got))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, "ls", truncateText("ls", 4))
}
