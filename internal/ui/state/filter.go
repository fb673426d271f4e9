package state

import "strings"

// AppendRune adds r to the filter while editing.
func (s *Selection) AppendRune(r rune) bool {
	if !s.running || s.Mode != ModeEditing {
		return false
	}
	s.Filter += string(r)
	s.applyFilter()
	return true
}

// DeleteRune removes the last rune of the filter while editing.
func (s *Selection) DeleteRune() bool {
	if !s.running || s.Mode != ModeEditing {
		return false
	}
	runes := []rune(s.Filter)
	if len(runes) == 0 {
		return false
	}
	s.Filter = string(runes[:len(runes)-1])
	s.applyFilter()
	return true
}

func (s *Selection) applyFilter() {
	s.Items = FilterItems(s.Full, s.Filter)
	s.revalidateCursor()
}

// revalidateCursor keeps an in-range cursor where it is so the highlight does
// not jump when matches disappear from the end of the list.
func (s *Selection) revalidateCursor() {
	n := len(s.Items)
	switch {
	case n == 0:
		s.Cursor = -1
		s.ViewportOffset = 0
	case s.Cursor < 0:
		s.Cursor = 0
	case s.Cursor >= n:
		s.Cursor = n - 1
	}
	if n > 0 && s.ViewportOffset > n-1 {
		s.ViewportOffset = 0
	}
}

// FilterItems returns the entries containing query, ignoring case, in their
// original order.
func FilterItems(entries []string, query string) []string {
	if query == "" {
		return cloneItems(entries)
	}
	lower := strings.ToLower(query)
	filtered := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
