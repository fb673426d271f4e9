package ui

import (
	"unicode"

	"github.com/atomicstack/dirpick/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type operation int

const (
	opNone operation = iota
	opQuit
	opNext
	opPrevious
	opEnterEditing
	opExitEditing
	opConfirm
	opAppend
	opErase
)

type keyMap struct {
	Quit         key.Binding
	ForceQuit    key.Binding
	Next         key.Binding
	Previous     key.Binding
	Search       key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
	EditNext     key.Binding
	EditPrevious key.Binding
	Erase        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Next:         key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Previous:     key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Confirm:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		EditNext:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		EditPrevious: key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Erase:        key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "erase")),
	}
}

// helpFor lists the bindings shown in the footer for mode.
func (k keyMap) helpFor(mode state.Mode) []key.Binding {
	if mode == state.ModeEditing {
		return []key.Binding{k.EditPrevious, k.EditNext, k.Confirm, k.Cancel}
	}
	return []key.Binding{k.Previous, k.Next, k.Search, k.Confirm, k.Quit}
}

// dispatch maps a key press to the operation it triggers in mode.
func dispatch(k keyMap, mode state.Mode, msg tea.KeyMsg) operation {
	if key.Matches(msg, k.ForceQuit) {
		return opQuit
	}
	if mode == state.ModeEditing {
		switch {
		case key.Matches(msg, k.Cancel):
			return opExitEditing
		case key.Matches(msg, k.Confirm):
			return opConfirm
		case key.Matches(msg, k.EditNext):
			return opNext
		case key.Matches(msg, k.EditPrevious):
			return opPrevious
		case key.Matches(msg, k.Erase):
			return opErase
		}
		if len(printableRunes(msg)) > 0 {
			return opAppend
		}
		return opNone
	}
	switch {
	case key.Matches(msg, k.Quit):
		return opQuit
	case key.Matches(msg, k.Next):
		return opNext
	case key.Matches(msg, k.Previous):
		return opPrevious
	case key.Matches(msg, k.Search):
		return opEnterEditing
	case key.Matches(msg, k.Confirm):
		return opConfirm
	}
	return opNone
}

// printableRunes returns the text a key press would type, or nil for
// control keys and alt chords.
func printableRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				return nil
			}
		}
		return msg.Runes
	}
	return nil
}
