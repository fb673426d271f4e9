package state

import (
	"math/rand"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNewSelectionInitialState(t *testing.T) {
	s := newTestSelection("Alpha", "Beta")
	if !s.Running() {
		t.Fatalf("expected new selection to be running")
	}
	if s.Mode != ModeNormal {
		t.Fatalf("expected normal mode, got %v", s.Mode)
	}
	if s.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor)
	}
	if s.Filter != "" {
		t.Fatalf("expected empty filter, got %q", s.Filter)
	}
	if !reflect.DeepEqual(s.Items, s.Full) {
		t.Fatalf("expected filtered view to equal entries")
	}
	if _, ok := s.Result(); ok {
		t.Fatalf("expected no result")
	}
}

func TestEnterAndExitEditing(t *testing.T) {
	s := newTestSelection("Alpha", "Beta", "Gamma")
	if s.ExitEditing() {
		t.Fatalf("expected exit to be ignored in normal mode")
	}
	if !s.EnterEditing() {
		t.Fatalf("expected enter editing to succeed")
	}
	if s.EnterEditing() {
		t.Fatalf("expected repeated enter to be a no-op")
	}
	for _, r := range "zzz" {
		s.AppendRune(r)
	}
	s.DeleteRune()
	if !s.ExitEditing() {
		t.Fatalf("expected exit editing to succeed")
	}
	if s.Mode != ModeNormal || s.Filter != "" {
		t.Fatalf("expected normal mode with empty filter, got %v %q", s.Mode, s.Filter)
	}
	if !reflect.DeepEqual(s.Items, s.Full) {
		t.Fatalf("expected full list restored, got %#v", s.Items)
	}
	if s.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor)
	}
}

func TestExitEditingKeepsInRangeCursor(t *testing.T) {
	s := newTestSelection("alpha", "beta", "gamma")
	s.SelectNext()
	s.SelectNext()
	if !s.EnterEditing() || !s.AppendRune('a') {
		t.Fatalf("expected editing to accept input")
	}
	if s.Cursor != 2 || len(s.Items) != 3 {
		t.Fatalf("expected cursor 2 over three matches, got %d %#v", s.Cursor, s.Items)
	}
	if !s.ExitEditing() {
		t.Fatalf("expected exit editing to succeed")
	}
	if s.Cursor != 2 {
		t.Fatalf("expected cursor to stay on gamma, got %d", s.Cursor)
	}
	if item, _ := s.Current(); item != "gamma" {
		t.Fatalf("expected gamma highlighted, got %q", item)
	}
}

func TestConfirmSetsResultAndStops(t *testing.T) {
	s := NewSelection("/root/dir", []string{"Alpha", "Beta"})
	s.SelectNext()
	path, ok := s.Confirm()
	if !ok || path != filepath.Join("/root/dir", "Beta") {
		t.Fatalf("expected Beta path, got %q %v", path, ok)
	}
	if s.Running() {
		t.Fatalf("expected selection to stop after confirm")
	}
	if got, _ := s.Result(); got != path {
		t.Fatalf("expected stored result %q, got %q", path, got)
	}
}

func TestConfirmWithEmptyViewStopsWithoutResult(t *testing.T) {
	s := newTestSelection("Alpha", "Beta")
	s.EnterEditing()
	s.AppendRune('q')
	if _, ok := s.Confirm(); ok {
		t.Fatalf("expected no result for empty view")
	}
	if s.Running() {
		t.Fatalf("expected selection to stop")
	}
}

func TestQuitKeepsResultUnset(t *testing.T) {
	s := newTestSelection("Alpha")
	s.Quit()
	if s.Running() {
		t.Fatalf("expected quit to stop the selection")
	}
	if _, ok := s.Result(); ok {
		t.Fatalf("expected no result after quit")
	}
}

func TestStoppedSelectionIgnoresTransitions(t *testing.T) {
	s := newTestSelection("Alpha", "Beta")
	first, _ := s.Confirm()
	s.Cursor = 1
	if s.SelectNext() || s.EnterEditing() {
		t.Fatalf("expected transitions to be ignored after stop")
	}
	second, ok := s.Confirm()
	if !ok || second != first {
		t.Fatalf("expected result to be set once, got %q then %q", first, second)
	}
	s.Quit()
	if got, _ := s.Result(); got != first {
		t.Fatalf("expected quit to keep result %q, got %q", first, got)
	}
}

func TestRoundTripScenario(t *testing.T) {
	s := NewSelection("/home/tester/Desktop", []string{"Alpha", "Beta", "Gamma"})
	s.EnterEditing()
	s.AppendRune('a')
	if !reflect.DeepEqual(s.Items, []string{"Alpha", "Beta", "Gamma"}) || s.Cursor != 0 {
		t.Fatalf("unexpected state after 'a': %#v %d", s.Items, s.Cursor)
	}
	s.AppendRune('l')
	if !reflect.DeepEqual(s.Items, []string{"Alpha"}) || s.Cursor != 0 {
		t.Fatalf("unexpected state after 'l': %#v %d", s.Items, s.Cursor)
	}
	path, ok := s.Confirm()
	if !ok || path != "/home/tester/Desktop/Alpha" {
		t.Fatalf("expected Alpha path, got %q", path)
	}
	if s.Running() {
		t.Fatalf("expected selection to stop")
	}
}

func TestCursorInvariantUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	entries := []string{"alpha", "Beta", "gamma", "Delta", "epsilon", "zeta", "Eta", "theta"}
	alphabet := []rune("aetlhzx")
	for round := 0; round < 200; round++ {
		s := newTestSelection(entries...)
		for step := 0; step < 40; step++ {
			switch rng.Intn(6) {
			case 0:
				s.EnterEditing()
			case 1:
				s.ExitEditing()
			case 2:
				s.AppendRune(alphabet[rng.Intn(len(alphabet))])
			case 3:
				s.DeleteRune()
			case 4:
				s.SelectNext()
			case 5:
				s.SelectPrevious()
			}
			if want := FilterItems(entries, s.Filter); !reflect.DeepEqual(s.Items, want) {
				t.Fatalf("round %d step %d: filtered view %#v, want %#v", round, step, s.Items, want)
			}
			if len(s.Items) == 0 {
				if s.Cursor != -1 {
					t.Fatalf("round %d step %d: expected unset cursor, got %d", round, step, s.Cursor)
				}
				continue
			}
			if s.Cursor < 0 || s.Cursor >= len(s.Items) {
				t.Fatalf("round %d step %d: cursor %d out of range for %d items", round, step, s.Cursor, len(s.Items))
			}
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeNormal.String() != "normal" || ModeEditing.String() != "editing" {
		t.Fatalf("unexpected mode names %q %q", ModeNormal, ModeEditing)
	}
}
