package state

import "sort"

// DefaultCompactWidth is the terminal width below which the compact layout
// is used.
const DefaultCompactWidth = 80

// Viewport tracks the scrollable body: the stacked event sections, the scroll
// offset, and the layout flags derived from the terminal size. Rows are
// measured from the top of the first section.
type Viewport struct {
	heights      []int
	tops         []int
	total        int
	offset       int
	width        int
	height       int
	compactWidth int
	compact      bool
	tabsVisible  bool
}

// NewViewport returns an empty viewport using the given compact threshold.
func NewViewport(compactWidth int) *Viewport {
	if compactWidth <= 0 {
		compactWidth = DefaultCompactWidth
	}
	return &Viewport{compactWidth: compactWidth, tabsVisible: true}
}

// SetSize records the terminal width and the body height in rows. The result
// reports whether the compact flag changed.
func (v *Viewport) SetSize(width, bodyHeight int) bool {
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	v.width = width
	v.height = bodyHeight
	compact := width > 0 && width < v.compactWidth
	changed := compact != v.compact
	v.compact = compact
	if changed || !compact {
		v.tabsVisible = true
	}
	v.offset = v.clampOffset(v.offset)
	return changed
}

// Width returns the last recorded terminal width.
func (v *Viewport) Width() int { return v.width }

// Height returns the body height in rows.
func (v *Viewport) Height() int { return v.height }

// Compact reports whether the compact layout is active.
func (v *Viewport) Compact() bool { return v.compact }

// TabsVisible reports whether the category selector should be drawn.
func (v *Viewport) TabsVisible() bool {
	if !v.compact {
		return true
	}
	return v.tabsVisible
}

// SetSections replaces the section heights, one per working-set event.
func (v *Viewport) SetSections(heights []int) {
	v.heights = make([]int, len(heights))
	v.tops = make([]int, len(heights))
	v.total = 0
	for i, h := range heights {
		if h < 1 {
			h = 1
		}
		v.heights[i] = h
		v.tops[i] = v.total
		v.total += h
	}
	v.offset = v.clampOffset(v.offset)
}

// Sections returns the number of laid out sections.
func (v *Viewport) Sections() int { return len(v.heights) }

// SectionTop returns the first row of section i.
func (v *Viewport) SectionTop(i int) (int, bool) {
	if i < 0 || i >= len(v.tops) {
		return 0, false
	}
	return v.tops[i], true
}

// SectionHeight returns the height of section i.
func (v *Viewport) SectionHeight(i int) (int, bool) {
	if i < 0 || i >= len(v.heights) {
		return 0, false
	}
	return v.heights[i], true
}

// Offset returns the current scroll offset.
func (v *Viewport) Offset() int { return v.offset }

// MaxOffset returns the largest valid scroll offset.
func (v *Viewport) MaxOffset() int {
	max := v.total - v.height
	if max < 0 {
		return 0
	}
	return max
}

// ScrollTo moves the offset, clamped to the content, and updates the tab
// visibility from the scroll direction. It reports whether the offset moved.
func (v *Viewport) ScrollTo(offset int) bool {
	next := v.clampOffset(offset)
	if next == v.offset {
		return false
	}
	if v.compact {
		v.tabsVisible = next < v.offset
	}
	v.offset = next
	return true
}

// ScrollBy moves the offset by delta rows.
func (v *Viewport) ScrollBy(delta int) bool {
	return v.ScrollTo(v.offset + delta)
}

// CurrentIndex derives the current section from the geometry: the last
// section whose top edge sits above the vertical midpoint of the body, or 0
// when none does.
func (v *Viewport) CurrentIndex() int {
	current := 0
	for i, top := range v.tops {
		if 2*(top-v.offset) < v.height {
			current = i
			continue
		}
		break
	}
	return current
}

// AlignOffset returns the offset that centres section i in the body. While
// every section is at least as tall as the body, CurrentIndex at that offset
// is i.
func (v *Viewport) AlignOffset(i int) (int, bool) {
	if i < 0 || i >= len(v.tops) {
		return 0, false
	}
	return v.clampOffset(v.tops[i] + v.heights[i]/2 - v.height/2), true
}

// SectionAtRow maps a body row to the section drawn there, or -1.
func (v *Viewport) SectionAtRow(row int) int {
	if row < 0 || row >= v.height {
		return -1
	}
	content := v.offset + row
	if content >= v.total {
		return -1
	}
	idx := sort.Search(len(v.tops), func(i int) bool { return v.tops[i] > content }) - 1
	if idx < 0 {
		return -1
	}
	return idx
}

func (v *Viewport) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if max := v.MaxOffset(); offset > max {
		return max
	}
	return offset
}
