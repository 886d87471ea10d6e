package ui

import (
	"testing"

	"github.com/atomicstack/tmux-popup-launcher/internal/index"
	"github.com/atomicstack/tmux-popup-launcher/internal/launch"
	"github.com/atomicstack/tmux-popup-launcher/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLauncher struct {
	requests []launch.Request
	err      error
}

func (r *recordingLauncher) Launch(req launch.Request) error {
	r.requests = append(r.requests, req)
	return r.err
}

func (r *recordingLauncher) Mode() launch.Mode { return launch.ModeTerminal }

func newTestModel(launcher *recordingLauncher, names ...string) *Model {
	idx := index.New(names...)
	m := NewModel(0, 0, false, false, func() *index.Index { return idx }, command.New(launcher))
	m.Update(indexLoadedMsg{index: idx})
	return m
}

func TestNewModelStartsLoadingWithLoader(t *testing.T) {
	m := NewModel(0, 0, false, false, func() *index.Index { return index.New("ls") }, nil)
	require.True(t, m.loading, "model should wait for the index")
	assert.Empty(t, m.Candidates())

	h := NewHarness(m)
	h.LoadIndex()

	assert.False(t, m.loading)
	assert.Equal(t, []string{"ls"}, m.Candidates())
}

func TestNewModelWithoutLoaderIsReady(t *testing.T) {
	m := NewModel(80, 10, false, false, nil, nil)
	assert.False(t, m.loading)
	assert.True(t, m.fixedWidth)
	assert.True(t, m.fixedHeight)
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(40, 0, false, false, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, 40, m.width, "fixed width wins")
	assert.Equal(t, 30, m.height, "height follows the terminal")
}

func TestCandidatesFollowBuffer(t *testing.T) {
	h := NewHarness(newTestModel(&recordingLauncher{}, "ls", "less", "lua", "vim"))
	want := []string{"ls", "lua", "less"}

	h.Type("l")
	assert.Equal(t, want, h.Model().Candidates())

	h.Type("u")
	assert.Equal(t, []string{"lua"}, h.Model().Candidates())

	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, want, h.Model().Candidates())
}

func TestCandidatesReturnsCopy(t *testing.T) {
	m := newTestModel(&recordingLauncher{}, "vim")
	got := m.Candidates()
	got[0] = "rm"
	assert.Equal(t, []string{"vim"}, m.Candidates())
}

func TestSelectionClampsWhenListShrinks(t *testing.T) {
	h := NewHarness(newTestModel(&recordingLauncher{}, "ls", "less", "lua", "vim"))
	h.Type("l")
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, h.Model().selection.Index())

	h.Type("u")
	assert.Equal(t, 0, h.Model().selection.Index())
}

func TestLaunchResultErrorKeepsPopupOpen(t *testing.T) {
	m := newTestModel(&recordingLauncher{}, "vim")
	m.launching = true

	_, cmd := m.Update(command.Result{Program: "vim", Err: launch.ErrNoTerminal})

	assert.Nil(t, cmd, "failed launch must not quit")
	assert.False(t, m.launching)
	assert.Equal(t, launch.ErrNoTerminal.Error(), m.errMsg)
	assert.Empty(t, m.Launched())
}

func TestLaunchResultSuccessQuits(t *testing.T) {
	m := newTestModel(&recordingLauncher{}, "vim")
	m.launching = true

	_, cmd := m.Update(command.Result{Program: "vim", Info: "Launched vim"})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "vim", m.Launched())
}

func TestVerboseIndexLoadSetsInfo(t *testing.T) {
	m := NewModel(0, 0, false, true, nil, nil)
	m.Update(indexLoadedMsg{index: index.New("a", "b")})
	assert.Contains(t, m.currentInfo(), "Indexed 2 executables")
}
