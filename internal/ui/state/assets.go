package state

import (
	"sort"

	"github.com/atomicstack/history-timeline/internal/catalog"
)

// AssetRadius is how many events either side of the cursor get their image
// resolved.
const AssetRadius = 2

// AssetWindow maps working-set indices to image references for events near
// the cursor. The window only grows while a category is shown; Clear drops
// everything when the category changes.
type AssetWindow struct {
	radius int
	loaded map[int]string
}

// NewAssetWindow returns an empty window with the given radius.
func NewAssetWindow(radius int) *AssetWindow {
	if radius < 0 {
		radius = 0
	}
	return &AssetWindow{radius: radius, loaded: make(map[int]string)}
}

// Radius returns the window radius.
func (w *AssetWindow) Radius() int {
	return w.radius
}

// Advance merges the images within the radius of active into the window and
// returns the indices that were added, in ascending order. Events without an
// image are skipped.
func (w *AssetWindow) Advance(active int, events []catalog.Event) []int {
	if len(events) == 0 {
		return nil
	}
	lo := active - w.radius
	if lo < 0 {
		lo = 0
	}
	hi := active + w.radius
	if hi > len(events)-1 {
		hi = len(events) - 1
	}
	var added []int
	for i := lo; i <= hi; i++ {
		if _, ok := w.loaded[i]; ok {
			continue
		}
		if !events[i].HasImage() {
			continue
		}
		w.loaded[i] = events[i].Image
		added = append(added, i)
	}
	return added
}

// Clear empties the window.
func (w *AssetWindow) Clear() {
	for i := range w.loaded {
		delete(w.loaded, i)
	}
}

// Image returns the image reference loaded for index i.
func (w *AssetWindow) Image(i int) (string, bool) {
	uri, ok := w.loaded[i]
	return uri, ok
}

// Indices returns the loaded indices in ascending order.
func (w *AssetWindow) Indices() []int {
	out := make([]int, 0, len(w.loaded))
	for i := range w.loaded {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of loaded entries.
func (w *AssetWindow) Len() int {
	return len(w.loaded)
}

// Near reports whether index lies within radius of active.
func Near(index, active, radius int) bool {
	d := index - active
	if d < 0 {
		d = -d
	}
	return d <= radius
}
