package state

import "github.com/atomicstack/history-timeline/internal/catalog"

// Row is the per-index projection handed to the renderer.
type Row struct {
	Index       int
	Year        string
	Title       string
	Description string
	Image       string
	HasImage    bool
	Active      bool
	Near        bool
}

// Timeline owns the navigation state: the selected category, its working set,
// the per-category cursors and the asset window. Every input path reads and
// writes through it, so handlers always observe current values.
type Timeline struct {
	events     []catalog.Event
	category   catalog.CategoryID
	working    []catalog.Event
	positions  *Positions
	assets     *AssetWindow
	generation int
	fresh      []int
}

// NewTimeline builds the state for a catalog, starting on the given category.
// Unknown categories fall back to All.
func NewTimeline(cat *catalog.Catalog, initial catalog.CategoryID) *Timeline {
	if !initial.Valid() {
		initial = catalog.All
	}
	events := cat.Events()
	t := &Timeline{
		events:    events,
		category:  initial,
		working:   FilterEvents(events, initial),
		positions: NewPositions(CountByCategory(events)),
		assets:    NewAssetWindow(AssetRadius),
	}
	t.syncAssets()
	return t
}

// Category returns the selected category.
func (t *Timeline) Category() catalog.CategoryID { return t.category }

// Generation increases on every category change and catalog reload.
func (t *Timeline) Generation() int { return t.generation }

// Len returns the size of the working set.
func (t *Timeline) Len() int { return len(t.working) }

// WorkingSet returns a copy of the events in scope.
func (t *Timeline) WorkingSet() []catalog.Event { return CloneEvents(t.working) }

// Event returns the working-set event at index i.
func (t *Timeline) Event(i int) (catalog.Event, bool) {
	if i < 0 || i >= len(t.working) {
		return catalog.Event{}, false
	}
	return t.working[i], true
}

// ActiveIndex returns the cursor of the selected category.
func (t *Timeline) ActiveIndex() int {
	return t.positions.Get(t.category)
}

// CursorFor returns the stored cursor of any category.
func (t *Timeline) CursorFor(c catalog.CategoryID) int {
	return t.positions.Get(c)
}

// SelectCategory switches to c, resetting its cursor and clearing the asset
// window. Selecting the current category changes nothing.
func (t *Timeline) SelectCategory(c catalog.CategoryID) bool {
	if !c.Valid() || c == t.category {
		return false
	}
	t.category = c
	t.working = FilterEvents(t.events, c)
	t.positions.Reset(c)
	t.resetAssets()
	return true
}

// ChangeTab moves to the neighbouring category, wrapping at both ends.
func (t *Timeline) ChangeTab(dir Direction) catalog.CategoryID {
	ids := catalog.Categories()
	n := len(ids)
	idx := t.category.Index()
	switch dir {
	case Right:
		idx = (idx + 1) % n
	case Left:
		idx = (idx - 1 + n) % n
	default:
		return t.category
	}
	t.SelectCategory(ids[idx])
	return t.category
}

// MoveRelative steps the active cursor up or down.
func (t *Timeline) MoveRelative(dir Direction) bool {
	moved := t.positions.MoveRelative(t.category, dir)
	t.syncAssets()
	return moved
}

// Select sets the active cursor directly.
func (t *Timeline) Select(index int) bool {
	moved := t.positions.Set(t.category, index)
	t.syncAssets()
	return moved
}

// MoveHome selects the first event.
func (t *Timeline) MoveHome() bool {
	moved := t.positions.MoveHome(t.category)
	t.syncAssets()
	return moved
}

// MoveEnd selects the last event.
func (t *Timeline) MoveEnd() bool {
	moved := t.positions.MoveEnd(t.category)
	t.syncAssets()
	return moved
}

// Reload swaps in a new catalog, keeping the category and re-clamping every
// stored cursor.
func (t *Timeline) Reload(cat *catalog.Catalog) {
	t.events = cat.Events()
	t.working = FilterEvents(t.events, t.category)
	t.positions.SetCounts(CountByCategory(t.events))
	t.resetAssets()
}

// Asset returns the image reference loaded for index i.
func (t *Timeline) Asset(i int) (string, bool) {
	return t.assets.Image(i)
}

// LoadedAssets returns the indices currently in the asset window.
func (t *Timeline) LoadedAssets() []int {
	return t.assets.Indices()
}

// TakeFreshAssets returns the image references added to the window since the
// previous call.
func (t *Timeline) TakeFreshAssets() map[int]string {
	if len(t.fresh) == 0 {
		return nil
	}
	out := make(map[int]string, len(t.fresh))
	for _, i := range t.fresh {
		if uri, ok := t.assets.Image(i); ok {
			out[i] = uri
		}
	}
	t.fresh = nil
	return out
}

// Rows projects the working set for rendering.
func (t *Timeline) Rows() []Row {
	active := t.ActiveIndex()
	rows := make([]Row, len(t.working))
	for i, event := range t.working {
		uri, loaded := t.assets.Image(i)
		rows[i] = Row{
			Index:       i,
			Year:        event.YearLabel(),
			Title:       event.Title,
			Description: event.Description,
			Image:       uri,
			HasImage:    loaded,
			Active:      i == active,
			Near:        Near(i, active, t.assets.Radius()),
		}
	}
	return rows
}

func (t *Timeline) resetAssets() {
	t.assets.Clear()
	t.fresh = nil
	t.generation++
	t.syncAssets()
}

func (t *Timeline) syncAssets() {
	if added := t.assets.Advance(t.ActiveIndex(), t.working); len(added) > 0 {
		t.fresh = append(t.fresh, added...)
	}
}
