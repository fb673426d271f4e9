package ui

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestViewNormalMode(t *testing.T) {
	m := newTestModel("alpha", "beta", "gamma")
	view := plain(m.View())
	for _, want := range []string{normalTitle, " 1/3 ", highlightSymbol + "alpha", "beta", normalPlaceholder} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	if lines := strings.Split(view, "\n"); len(lines) != fallbackHeight {
		t.Fatalf("expected %d lines, got %d", fallbackHeight, len(lines))
	}
}

func TestViewEditingMode(t *testing.T) {
	h := NewHarness(newTestModel("alpha", "beta"))
	h.Type("/be")
	view := plain(h.View())
	if !strings.Contains(view, editingTitle) {
		t.Fatalf("expected editing title, got:\n%s", view)
	}
	if !strings.Contains(view, filterPromptSymbol+"be") {
		t.Fatalf("expected query in prompt, got:\n%s", view)
	}
	if !strings.Contains(view, highlightSymbol+"beta") {
		t.Fatalf("expected beta highlighted, got:\n%s", view)
	}
	if strings.Contains(view, "alpha") {
		t.Fatalf("expected alpha filtered out, got:\n%s", view)
	}
}

func TestViewNoMatches(t *testing.T) {
	h := NewHarness(newTestModel("alpha"))
	h.Type("/zz")
	view := plain(h.View())
	if !strings.Contains(view, `No matches for "zz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
	if !strings.Contains(view, " 0/0 ") {
		t.Fatalf("expected empty count, got:\n%s", view)
	}
}

func TestViewEmptyAfterStop(t *testing.T) {
	h := NewHarness(newTestModel("alpha"))
	h.Press(tea.KeyEnter)
	if got := h.View(); got != "" {
		t.Fatalf("expected empty view after confirm, got %q", got)
	}
}

func TestViewTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 80)
	m := NewModel("/tmp", []string{long}, 40, 20, false)
	view := plain(m.View())
	if strings.Contains(view, long) {
		t.Fatalf("expected long name to be truncated, got:\n%s", view)
	}
	if !strings.Contains(view, "…") {
		t.Fatalf("expected ellipsis in truncated view, got:\n%s", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Fatalf("expected lines within 40 columns, got %d: %q", w, line)
		}
	}
}

func TestViewScrollsToCursor(t *testing.T) {
	entries := make([]string, 30)
	for i := range entries {
		entries[i] = fmt.Sprintf("item-%02d", i)
	}
	h := NewHarness(NewModel("/tmp", entries, 80, 20, false))
	h.Type("k")
	view := plain(h.View())
	if !strings.Contains(view, highlightSymbol+"item-29") {
		t.Fatalf("expected wrapped cursor on last item, got:\n%s", view)
	}
	if strings.Contains(view, "item-00") {
		t.Fatalf("expected first item scrolled out of view, got:\n%s", view)
	}
	if !strings.Contains(view, " 30/30 ") {
		t.Fatalf("expected count 30/30, got:\n%s", view)
	}
}

func TestViewFooter(t *testing.T) {
	m := NewModel("/tmp", []string{"alpha"}, 0, 0, true)
	view := plain(m.View())
	if !strings.Contains(view, "search") || !strings.Contains(view, "down") {
		t.Fatalf("expected key help in footer, got:\n%s", view)
	}
	h := NewHarness(m)
	h.Type("/")
	view = plain(h.View())
	if !strings.Contains(view, "clear") {
		t.Fatalf("expected editing help in footer, got:\n%s", view)
	}
}

func TestPanelSizeClamps(t *testing.T) {
	w, h := panelSize(20, 6)
	if w != 20 || h != 6 {
		t.Fatalf("expected panel clamped to screen, got %dx%d", w, h)
	}
	w, h = panelSize(200, 100)
	if w != 120 || h != 50 {
		t.Fatalf("expected 60%%/50%% panel, got %dx%d", w, h)
	}
}
