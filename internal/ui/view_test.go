package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/history-timeline/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShape(t *testing.T) {
	m := newTestModel(t, sampleEvents())
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 23 {
		t.Fatalf("expected 23 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 100 {
			t.Fatalf("line %d exceeds the width: %d", i, w)
		}
	}
	for _, id := range catalog.Categories() {
		if !strings.Contains(lines[0], id.Label()) {
			t.Fatalf("expected tab %q in %q", id.Label(), lines[0])
		}
	}
	if !strings.Contains(lines[len(lines)-1], "All  1/6") {
		t.Fatalf("expected status line, got %q", lines[len(lines)-1])
	}
}

func TestViewShowsActiveEvent(t *testing.T) {
	h := NewHarness(newTestModel(t, sampleEvents()))
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	view := h.View()
	for _, want := range []string{"9000 BC  Farming begins", "Crops in the Fertile Crescent.", "All  2/6"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Magna Carta") {
		t.Fatalf("expected off-screen events to be hidden")
	}
}

func TestViewRailShowsNearYears(t *testing.T) {
	m := newTestModel(t, sampleEvents())
	view := m.View()
	for _, want := range []string{"17000 BC", "2560 BC", railDotActive} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q on the rail:\n%s", want, view)
		}
	}
	if strings.Contains(view, "1066") {
		t.Fatalf("expected events beyond the radius off the rail")
	}
}

func TestViewEmptyCategory(t *testing.T) {
	h := NewHarness(newTestModel(t, sampleEvents()))
	h.Send(keyRunes("6"))
	view := h.View()
	if !strings.Contains(view, "(no events)") {
		t.Fatalf("expected empty placeholder, got:\n%s", view)
	}
	if !strings.Contains(view, "Contemporary  0/0") {
		t.Fatalf("expected empty status line, got:\n%s", view)
	}
}

func TestViewFooter(t *testing.T) {
	m := newTestModel(t, sampleEvents(), func(o *Options) { o.ShowFooter = true })
	lines := strings.Split(m.View(), "\n")
	if got := lines[len(lines)-1]; !strings.Contains(got, "q quit") {
		t.Fatalf("expected footer hint, got %q", got)
	}
}

func TestViewCompactHidesTabsOnScroll(t *testing.T) {
	h := NewHarness(newTestModel(t, sampleEvents(), func(o *Options) { o.Width = 60 }))
	if first := strings.Split(h.View(), "\n")[0]; !strings.Contains(first, "All") {
		t.Fatalf("expected tabs before scrolling, got %q", first)
	}
	h.Send(wheel(tea.MouseButtonWheelDown))
	if first := strings.Split(h.View(), "\n")[0]; first != "" {
		t.Fatalf("expected hidden tabs after scrolling down, got %q", first)
	}
	if strings.Contains(h.View(), "2560 BC") {
		t.Fatalf("expected years dropped from the compact rail")
	}
	h.Send(wheel(tea.MouseButtonWheelUp))
	if first := strings.Split(h.View(), "\n")[0]; !strings.Contains(first, "All") {
		t.Fatalf("expected tabs back after scrolling up, got %q", first)
	}
}

func TestCompactTabRowShowsSelectedCategory(t *testing.T) {
	m := newTestModel(t, sampleEvents(), func(o *Options) { o.Width = 60 })
	for _, id := range catalog.Categories() {
		m.selectCategory(id)
		row := ansi.Strip(strings.Split(m.View(), "\n")[0])
		if !strings.Contains(row, id.Label()) {
			t.Fatalf("expected %q in the tab row, got %q", id.Label(), row)
		}
		if w := lipgloss.Width(row); w > 60 {
			t.Fatalf("expected the tab row to fit 60 cells, got %d", w)
		}
		for _, r := range m.tabRanges() {
			if got := row[r.start:r.end]; got != tabText(r.category) {
				t.Fatalf("expected %q at %d..%d, got %q", tabText(r.category), r.start, r.end, got)
			}
		}
	}
}

func TestWideTabRowShowsEveryCategory(t *testing.T) {
	m := newTestModel(t, sampleEvents())
	if got := len(m.tabRanges()); got != len(catalog.Categories()) {
		t.Fatalf("expected every tab at width 100, got %d", got)
	}
}

func TestViewFitsShortTerminal(t *testing.T) {
	for _, height := range []int{1, 2, 3} {
		m := newTestModel(t, sampleEvents(), func(o *Options) { o.Height = height })
		if got := len(strings.Split(m.View(), "\n")); got != height {
			t.Fatalf("height %d: expected %d lines, got %d", height, height, got)
		}
	}
}
