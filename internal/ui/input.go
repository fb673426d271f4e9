package ui

import (
	"github.com/atomicstack/dirpick/internal/logging/events"
	"github.com/atomicstack/dirpick/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	filterPromptSymbol = "» "
	normalPlaceholder  = "press / to search"
	editingPlaceholder = "type to filter"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) appendToFilter(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	changed := false
	for _, r := range runes {
		if m.selection.AppendRune(r) {
			changed = true
		}
	}
	if !changed {
		return false
	}
	m.filterCursorDirty = true
	events.Picker.Filter(m.selection.Filter, len(m.selection.Items))
	return true
}

func (m *Model) removeFilterRune() bool {
	if !m.selection.DeleteRune() {
		return false
	}
	m.filterCursorDirty = true
	events.Picker.Filter(m.selection.Filter, len(m.selection.Items))
	return true
}

// filterPrompt renders the prompt row. The caret is only drawn while editing.
func (m *Model) filterPrompt() string {
	prompt := paint(styles.FilterPrompt, filterPromptSymbol)
	sel := m.selection
	if sel.Mode != state.ModeEditing {
		return prompt + paint(styles.FilterPlaceholder, normalPlaceholder)
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	if sel.Filter == "" {
		runes := []rune(editingPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + paint(styles.FilterPlaceholder, string(runes[1:]))
	}
	return prompt + paint(styles.Filter, sel.Filter) + m.renderFilterCursor(" ")
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Render(char)
	}
	return base.Reverse(true).Render(char)
}
