package state

import "github.com/atomicstack/history-timeline/internal/catalog"

// Direction names a single navigation step on either axis.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Positions is the per-category cursor map. All writes go through Set, which
// clamps the index into the category's working set.
type Positions struct {
	cursors map[catalog.CategoryID]int
	counts  map[catalog.CategoryID]int
}

// NewPositions builds a store for working sets of the given sizes.
func NewPositions(counts map[catalog.CategoryID]int) *Positions {
	p := &Positions{cursors: make(map[catalog.CategoryID]int)}
	p.SetCounts(counts)
	return p
}

// SetCounts replaces the working set sizes and re-clamps stored cursors.
func (p *Positions) SetCounts(counts map[catalog.CategoryID]int) {
	p.counts = make(map[catalog.CategoryID]int, len(counts))
	for id, n := range counts {
		p.counts[id] = n
	}
	for id, idx := range p.cursors {
		p.cursors[id] = clampIndex(idx, p.counts[id])
	}
}

// Count returns the working set size for the category.
func (p *Positions) Count(c catalog.CategoryID) int {
	return p.counts[c]
}

// Get returns the cursor for the category, creating a zero entry on first use.
func (p *Positions) Get(c catalog.CategoryID) int {
	idx, ok := p.cursors[c]
	if !ok {
		p.cursors[c] = 0
		return 0
	}
	return idx
}

// Set clamps index into the category's working set and stores it. It is a
// no-op for empty working sets. The result reports whether the cursor moved.
func (p *Positions) Set(c catalog.CategoryID, index int) bool {
	n := p.counts[c]
	if n == 0 {
		return false
	}
	old := p.Get(c)
	p.cursors[c] = clampIndex(index, n)
	return p.cursors[c] != old
}

// Reset puts the category's cursor back on the first event.
func (p *Positions) Reset(c catalog.CategoryID) {
	p.cursors[c] = 0
}

// MoveRelative steps the cursor one event up or down. Steps past either end
// leave the cursor where it is.
func (p *Positions) MoveRelative(c catalog.CategoryID, dir Direction) bool {
	switch dir {
	case Down:
		return p.Set(c, p.Get(c)+1)
	case Up:
		return p.Set(c, p.Get(c)-1)
	default:
		return false
	}
}

// MoveHome moves the cursor to the first event.
func (p *Positions) MoveHome(c catalog.CategoryID) bool {
	return p.Set(c, 0)
}

// MoveEnd moves the cursor to the last event.
func (p *Positions) MoveEnd(c catalog.CategoryID) bool {
	return p.Set(c, p.counts[c]-1)
}

func clampIndex(index, n int) int {
	if n <= 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
