package ui

import (
	"strings"

	"github.com/atomicstack/history-timeline/internal/catalog"
	uistate "github.com/atomicstack/history-timeline/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	headerRows = 2 // tab bar + spacer
	bottomRows = 1 // status, search prompt or footer

	railWidthWide    = 12
	railWidthCompact = 4
	minTextWidth     = 8
	swatchCellWide   = 2
	swatchCellNarrow = 1
	swatchColumns    = 8
	wheelStep        = 3
)

// sectionLayout holds the wrapped text of one event, computed for the current
// width. The section's row count comes from the viewport.
type sectionLayout struct {
	title       []string
	description []string
	hasImage    bool
}

func (s sectionLayout) contentRows() int {
	rows := len(s.title) + 1 + len(s.description)
	if s.hasImage {
		rows++
	}
	return rows
}

type tabRange struct {
	category catalog.CategoryID
	start    int
	end      int
}

func (m *Model) railWidth() int {
	if m.viewport.Compact() {
		return railWidthCompact
	}
	return railWidthWide
}

func (m *Model) swatchWidth() int {
	if m.viewport.Compact() {
		return swatchColumns * swatchCellNarrow
	}
	return swatchColumns * swatchCellWide
}

// textWidth is what remains of a body row after the rail, its separator and
// the swatch band.
func (m *Model) textWidth() int {
	w := m.width - m.railWidth() - 3 - m.swatchWidth()
	if w < minTextWidth {
		return minTextWidth
	}
	return w
}

// applySize pushes the terminal size into the viewport and rebuilds the
// section layout.
func (m *Model) applySize() {
	m.viewport.SetSize(m.width, m.bodyHeight())
	m.relayout()
}

// relayout rewraps every working-set event and hands the section heights to
// the viewport. A section is never shorter than the body so that centring any
// section derives that same section back.
func (m *Model) relayout() {
	events := m.timeline.WorkingSet()
	width := m.textWidth()
	body := m.bodyHeight()
	m.sections = make([]sectionLayout, len(events))
	heights := make([]int, len(events))
	for i, event := range events {
		title := event.YearLabel() + "  " + event.Title
		layout := sectionLayout{
			title:    wrapLines(title, width),
			hasImage: event.HasImage(),
		}
		if desc := strings.TrimSpace(event.Description); desc != "" {
			layout.description = wrapLines(desc, width)
		}
		m.sections[i] = layout
		h := layout.contentRows()
		if h < body {
			h = body
		}
		heights[i] = h
	}
	m.viewport.SetSections(heights)
}

func wrapLines(text string, width int) []string {
	wrapped := ansi.Wrap(text, width, "")
	return strings.Split(wrapped, "\n")
}

// tabRanges lays the category labels out on the first row. When they do not
// all fit the width, the row shows a contiguous run of tabs grown outwards
// from the selected one, so the selection is always drawn and its neighbours
// are one click away.
func (m *Model) tabRanges() []tabRange {
	ids := catalog.Categories()
	widths := make([]int, len(ids))
	total := -1
	for i, id := range ids {
		widths[i] = lipgloss.Width(tabText(id))
		total += widths[i] + 1
	}
	first, last := 0, len(ids)-1
	if total > m.width {
		first = m.timeline.Category().Index()
		if first < 0 {
			first = 0
		}
		last = first
		used := widths[first]
		for grew := true; grew; {
			grew = false
			if last+1 < len(ids) && used+1+widths[last+1] <= m.width {
				last++
				used += 1 + widths[last]
				grew = true
			}
			if first > 0 && used+1+widths[first-1] <= m.width {
				first--
				used += 1 + widths[first]
				grew = true
			}
		}
	}
	ranges := make([]tabRange, 0, last-first+1)
	x := 0
	for i := first; i <= last; i++ {
		ranges = append(ranges, tabRange{category: ids[i], start: x, end: x + widths[i]})
		x += widths[i] + 1
	}
	return ranges
}

func tabText(id catalog.CategoryID) string {
	return " " + id.Label() + " "
}

func (m *Model) tabAt(x int) (catalog.CategoryID, bool) {
	for _, r := range m.tabRanges() {
		if x >= r.start && x < r.end {
			return r.category, true
		}
	}
	return "", false
}

// railRows places the events near the cursor on the rail, spread evenly
// between a quarter and three quarters of the body height. The result maps
// body rows to working-set indices.
func (m *Model) railRows() map[int]int {
	rows := m.timeline.Rows()
	near := make([]int, 0, 2*uistate.AssetRadius+1)
	for _, row := range rows {
		if row.Near {
			near = append(near, row.Index)
		}
	}
	out := make(map[int]int, len(near))
	if len(near) == 0 {
		return out
	}
	body := m.bodyHeight()
	start := body / 4
	span := 3*body/4 - start
	for k, index := range near {
		row := start + (2*k+1)*span/(2*len(near))
		if _, taken := out[row]; taken {
			continue
		}
		out[row] = index
	}
	return out
}
