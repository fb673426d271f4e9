package ui

import (
	"github.com/atomicstack/dirpick/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.apply(dispatch(m.keys, m.selection.Mode, keyMsg), keyMsg)
	if !m.selection.Running() {
		return tea.Quit
	}
	return nil
}

// apply runs op against the selection.
func (m *Model) apply(op operation, msg tea.KeyMsg) {
	sel := m.selection
	switch op {
	case opQuit:
		sel.Quit()
		events.Picker.Quit(sel.Mode.String())
	case opNext:
		if sel.SelectNext() {
			m.noteCursorMove()
		}
	case opPrevious:
		if sel.SelectPrevious() {
			m.noteCursorMove()
		}
	case opEnterEditing:
		if sel.EnterEditing() {
			m.filterCursorDirty = true
			events.Picker.Mode(sel.Mode.String())
		}
	case opExitEditing:
		if sel.ExitEditing() {
			events.Picker.Mode(sel.Mode.String())
			events.Picker.Filter(sel.Filter, len(sel.Items))
		}
	case opConfirm:
		path, selected := sel.Confirm()
		events.Picker.Confirm(path, selected)
	case opAppend:
		m.appendToFilter(printableRunes(msg))
	case opErase:
		m.removeFilterRune()
	}
	m.syncViewport()
}

func (m *Model) noteCursorMove() {
	item, _ := m.selection.Current()
	events.Picker.Cursor(m.selection.Cursor, item)
}

func (m *Model) syncViewport() {
	m.selection.EnsureCursorVisible(m.maxVisibleItems())
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
	m.syncViewport()
	return nil
}
