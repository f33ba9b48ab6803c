package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(h *Harness, text string) {
	for _, r := range text {
		h.Send(keyRunes(string(r)))
	}
}

func TestSearchEnterKeepsMatch(t *testing.T) {
	h := NewHarness(newTestModel(t, sampleEvents()))
	h.Send(keyRunes("/"))
	if !h.Model().searching {
		t.Fatalf("expected search prompt to open")
	}
	typeText(h, "hast")
	m := h.Model()
	if got := m.Timeline().ActiveIndex(); got != 4 {
		t.Fatalf("expected live search to select 4, got %d", got)
	}
	if !strings.Contains(h.View(), "/hast") {
		t.Fatalf("expected the prompt in the bottom line, got:\n%s", h.View())
	}

	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatalf("expected enter to close the prompt")
	}
	if got := m.Timeline().ActiveIndex(); got != 4 {
		t.Fatalf("expected cursor to stay on 4, got %d", got)
	}
	if got := m.Viewport().CurrentIndex(); got != 4 {
		t.Fatalf("expected viewport to settle on 4, got %d", got)
	}
}

func TestSearchEscRestoresOrigin(t *testing.T) {
	h := NewHarness(newTestModel(t, sampleEvents()))
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(keyRunes("/"))
	typeText(h, "magna")
	if got := h.Model().Timeline().ActiveIndex(); got != 5 {
		t.Fatalf("expected search to select 5, got %d", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	m := h.Model()
	if m.searching {
		t.Fatalf("expected esc to close the prompt")
	}
	if got := m.Timeline().ActiveIndex(); got != 1 {
		t.Fatalf("expected cursor restored to 1, got %d", got)
	}
	if got := m.Viewport().CurrentIndex(); got != 1 {
		t.Fatalf("expected viewport back on 1, got %d", got)
	}
}

func TestSearchWithoutMatchKeepsCursor(t *testing.T) {
	h := NewHarness(newTestModel(t, sampleEvents()))
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(keyRunes("/"))
	typeText(h, "zzz")
	if got := h.Model().Timeline().ActiveIndex(); got != 1 {
		t.Fatalf("expected cursor to stay on 1, got %d", got)
	}
}

func TestSearchClearedQueryReturnsToOrigin(t *testing.T) {
	h := NewHarness(newTestModel(t, sampleEvents()))
	h.Send(keyRunes("/"))
	typeText(h, "m")
	if got := h.Model().Timeline().ActiveIndex(); got != 5 {
		t.Fatalf("expected m to match Magna Carta, got %d", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := h.Model().Timeline().ActiveIndex(); got != 0 {
		t.Fatalf("expected empty query to return to 0, got %d", got)
	}
}

func TestSearchCapturesNavigationKeys(t *testing.T) {
	h := NewHarness(newTestModel(t, sampleEvents()))
	h.Send(keyRunes("/"))
	h.Send(keyRunes("q"))
	if h.Quit() {
		t.Fatalf("expected q to be typed into the prompt")
	}
	h.Send(wheel(tea.MouseButtonWheelDown))
	if h.Model().Viewport().Offset() != 0 {
		t.Fatalf("expected mouse input to be ignored while searching")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit from the prompt")
	}
}
