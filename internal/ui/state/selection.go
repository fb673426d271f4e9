package state

import "path/filepath"

// Mode controls which keys the picker accepts.
type Mode int

const (
	// ModeNormal accepts navigation keys only.
	ModeNormal Mode = iota
	// ModeEditing routes printable keys into the filter.
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Selection owns the folder list, the filtered view, the cursor and the
// picker lifecycle. Cursor is -1 exactly when Items is empty.
type Selection struct {
	Root           string
	Full           []string
	Items          []string
	Filter         string
	Cursor         int
	Mode           Mode
	ViewportOffset int

	result    string
	hasResult bool
	running   bool
}

// NewSelection constructs a running selection over entries rooted at root.
func NewSelection(root string, entries []string) *Selection {
	s := &Selection{
		Root:    root,
		Full:    cloneItems(entries),
		Cursor:  -1,
		Mode:    ModeNormal,
		running: true,
	}
	s.applyFilter()
	return s
}

// Running reports whether the picker still accepts input.
func (s *Selection) Running() bool {
	return s.running
}

// Result returns the confirmed path, if any.
func (s *Selection) Result() (string, bool) {
	return s.result, s.hasResult
}

// Current returns the highlighted item.
func (s *Selection) Current() (string, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return "", false
	}
	return s.Items[s.Cursor], true
}

// EnterEditing switches to filter entry.
func (s *Selection) EnterEditing() bool {
	if !s.running || s.Mode != ModeNormal {
		return false
	}
	s.Mode = ModeEditing
	return true
}

// ExitEditing returns to navigation and drops the filter.
func (s *Selection) ExitEditing() bool {
	if !s.running || s.Mode != ModeEditing {
		return false
	}
	s.Mode = ModeNormal
	s.Filter = ""
	s.applyFilter()
	return true
}

// Confirm records the highlighted folder as the result and stops the picker.
// With nothing highlighted the picker still stops, without a result.
func (s *Selection) Confirm() (string, bool) {
	if !s.running {
		return s.Result()
	}
	if name, ok := s.Current(); ok {
		s.result = filepath.Join(s.Root, name)
		s.hasResult = true
	}
	s.running = false
	return s.Result()
}

// Quit stops the picker without touching the result.
func (s *Selection) Quit() {
	s.running = false
}

func cloneItems(items []string) []string {
	dup := make([]string, len(items))
	copy(dup, items)
	return dup
}
