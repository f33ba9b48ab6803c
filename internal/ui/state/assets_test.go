package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/history-timeline/internal/catalog"
)

func windowEvents(images ...string) []catalog.Event {
	events := make([]catalog.Event, len(images))
	for i, image := range images {
		events[i] = catalog.Event{Category: catalog.Prehistory, Title: "e", Image: image}
	}
	return events
}

func TestAdvanceLoadsRadiusAroundCursor(t *testing.T) {
	w := NewAssetWindow(AssetRadius)
	events := windowEvents("a", "b", "c", "d", "e", "f", "g")
	added := w.Advance(3, events)
	if !reflect.DeepEqual(added, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected indices 1..5, got %v", added)
	}
	if uri, ok := w.Image(4); !ok || uri != "e" {
		t.Fatalf("expected image e at 4, got %q (%v)", uri, ok)
	}
}

func TestAdvanceClipsAtEdges(t *testing.T) {
	w := NewAssetWindow(AssetRadius)
	events := windowEvents("a", "b", "c")
	if added := w.Advance(0, events); !reflect.DeepEqual(added, []int{0, 1, 2}) {
		t.Fatalf("expected 0..2, got %v", added)
	}
	if added := w.Advance(2, events); len(added) != 0 {
		t.Fatalf("expected nothing new, got %v", added)
	}
	if w.Advance(0, nil) != nil {
		t.Fatalf("expected nil for empty working set")
	}
}

func TestAdvanceNeverShrinks(t *testing.T) {
	w := NewAssetWindow(AssetRadius)
	events := windowEvents("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	w.Advance(0, events)
	w.Advance(9, events)
	if got := w.Indices(); !reflect.DeepEqual(got, []int{0, 1, 2, 7, 8, 9}) {
		t.Fatalf("expected union of both neighbourhoods, got %v", got)
	}
	w.Clear()
	if w.Len() != 0 {
		t.Fatalf("expected cleared window, got %d entries", w.Len())
	}
}

func TestAdvanceSkipsEventsWithoutImage(t *testing.T) {
	w := NewAssetWindow(AssetRadius)
	added := w.Advance(1, windowEvents("a", "", "c"))
	if !reflect.DeepEqual(added, []int{0, 2}) {
		t.Fatalf("expected only imaged events, got %v", added)
	}
}

func TestNear(t *testing.T) {
	if !Near(3, 5, 2) || !Near(7, 5, 2) || Near(8, 5, 2) {
		t.Fatalf("unexpected Near results")
	}
	if NewAssetWindow(-1).Radius() != 0 {
		t.Fatalf("expected negative radius to clamp to 0")
	}
}
