package ui

import (
	"reflect"

	"github.com/atomicstack/dirpick/internal/theme"
	"github.com/atomicstack/dirpick/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the folder picker.
type Model struct {
	selection         *state.Selection
	keys              keyMap
	help              help.Model
	filterCursor      cursor.Model
	filterCursorDirty bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the picker over entries found below root.
func NewModel(root string, entries []string, width, height int, showFooter bool) *Model {
	m := &Model{
		selection:  state.NewSelection(root, entries),
		keys:       defaultKeyMap(),
		help:       newHelp(),
		showFooter: showFooter,
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
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	m.syncViewport()
	return m
}

func newHelp() help.Model {
	h := help.New()
	if styles.Footer != nil {
		h.Styles.ShortDesc = *styles.Footer
		h.Styles.ShortSeparator = *styles.Footer
	}
	return h
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.selection.Running() {
		return m, tea.Quit
	}
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Result returns the confirmed folder path, if any.
func (m *Model) Result() (string, bool) {
	return m.selection.Result()
}

// Selection exposes the picker state.
func (m *Model) Selection() *state.Selection {
	return m.selection
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
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
	if !m.selection.Running() {
		return tea.Quit
	}
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
