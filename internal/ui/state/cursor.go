package state

// SelectNext moves the cursor down, wrapping from the last item to the first.
func (s *Selection) SelectNext() bool {
	n := len(s.Items)
	if !s.running || n == 0 {
		return false
	}
	old := s.Cursor
	if s.Cursor < 0 {
		s.Cursor = 0
	} else {
		s.Cursor = (s.Cursor + 1) % n
	}
	return old != s.Cursor
}

// SelectPrevious moves the cursor up, wrapping from the first item to the last.
func (s *Selection) SelectPrevious() bool {
	n := len(s.Items)
	if !s.running || n == 0 {
		return false
	}
	old := s.Cursor
	if s.Cursor <= 0 {
		s.Cursor = n - 1
	} else {
		s.Cursor--
	}
	return old != s.Cursor
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (s *Selection) EnsureCursorVisible(maxVisible int) {
	if len(s.Items) == 0 {
		s.ViewportOffset = 0
		return
	}
	if maxVisible <= 0 {
		s.ViewportOffset = 0
		return
	}
	maxOffset := len(s.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
	if s.Cursor < 0 {
		return
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if upper := s.ViewportOffset + maxVisible - 1; s.Cursor > upper {
		s.ViewportOffset = s.Cursor - maxVisible + 1
	}
}

// Visible returns the slice of items inside the viewport and its start index.
// The start is derived from ViewportOffset and the cursor without storing it.
func (s *Selection) Visible(maxVisible int) ([]string, int) {
	if maxVisible <= 0 || len(s.Items) <= maxVisible {
		return s.Items, 0
	}
	start := s.ViewportOffset
	if s.Cursor >= 0 {
		if s.Cursor < start {
			start = s.Cursor
		}
		if s.Cursor > start+maxVisible-1 {
			start = s.Cursor - maxVisible + 1
		}
	}
	if last := len(s.Items) - maxVisible; start > last {
		start = last
	}
	if start < 0 {
		start = 0
	}
	return s.Items[start : start+maxVisible], start
}
