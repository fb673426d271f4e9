package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for tests. Returned commands
// are kept rather than executed, since the only ones the picker issues are
// cursor blink timers and tea.Quit.
type Harness struct {
	model   *Model
	lastCmd tea.Cmd
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.lastCmd = cmd
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a non-rune key press such as tea.KeyEnter.
func (h *Harness) Press(keyType tea.KeyType) {
	h.Send(tea.KeyMsg{Type: keyType})
}

// Stopped reports whether the model asked the program to exit.
func (h *Harness) Stopped() bool {
	return h.model != nil && !h.model.selection.Running()
}

// LastCmd returns the command produced by the most recent Send.
func (h *Harness) LastCmd() tea.Cmd {
	return h.lastCmd
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
