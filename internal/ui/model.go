package ui

import (
	"reflect"
	"slices"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/index"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/atomicstack/tmux-popup-launcher/internal/theme"
	"github.com/atomicstack/tmux-popup-launcher/internal/ui/command"
	"github.com/atomicstack/tmux-popup-launcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// IndexLoader builds the executable index. It runs once, off the update
// loop, when the program starts.
type IndexLoader func() *index.Index

// Model implements the Bubble Tea model for the launcher popup.
type Model struct {
	buffer     state.Buffer
	selection  state.Selection
	candidates []string
	index      *index.Index

	loader    IndexLoader
	loading   bool
	launching bool
	pending   string
	launched  string

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	promptCursor      cursor.Model
	promptCursorDirty bool
	focused           bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel initialises the UI state. A nil loader leaves the index empty.
func NewModel(width, height int, showFooter, verbose bool, loader IndexLoader, bus *command.Bus) *Model {
	m := &Model{
		loader:     loader,
		loading:    loader != nil,
		showFooter: showFooter,
		verbose:    verbose,
		bus:        bus,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Prompt != nil {
		c.TextStyle = styles.Prompt.Copy()
	}
	c.SetChar(" ")
	m.promptCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loader != nil {
		cmds = append(cmds, loadIndexCmd(m.loader))
	}
	m.focused = true
	if cmd := m.promptCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.refreshCandidates()
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updatePromptCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Launched returns the program handed to the dispatcher, if any.
func (m *Model) Launched() string {
	return m.launched
}

// Candidates returns a copy of the current candidate list.
func (m *Model) Candidates() []string {
	return slices.Clone(m.candidates)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(indexLoadedMsg{}):    m.handleIndexLoadedMsg,
		reflect.TypeOf(command.Result{}):    m.handleLaunchResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.refreshCandidates()
	if m.promptCursorDirty {
		m.promptCursorDirty = false
		m.promptCursor.Blink = false
		if m.focused {
			if cmd := m.promptCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// refreshCandidates re-ranks the index against the buffer and keeps the
// selection inside the new list.
func (m *Model) refreshCandidates() {
	next := state.Rank(m.index, m.buffer.Text())
	changed := !slices.Equal(next, m.candidates)
	m.candidates = next
	if m.selection.Clamp(len(next)) {
		events.UI.Selection(m.selection.Index(), m.selectedCandidate())
	}
	if changed {
		events.UI.Candidates(m.buffer.Text(), next)
	}
}

func (m *Model) selectedCandidate() string {
	idx := m.selection.Index()
	if idx < 0 || idx >= len(m.candidates) {
		return ""
	}
	return m.candidates[idx]
}
