package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const twoEvents = `
- age: prehistory
  year: -9000
  title: Farming
- age: middle-ages
  year: 1066
  title: Hastings
`

func nextEvent(t *testing.T, w *Watcher, match func(Event) bool) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-w.Events():
			if !ok {
				t.Fatalf("events channel closed early")
			}
			if match(evt) {
				return evt
			}
		case <-deadline:
			t.Fatalf("timed out waiting for watcher event")
		}
	}
}

func TestWatcherReloadsCatalogOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timeline.yaml")
	if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(path, []byte(twoEvents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	evt := nextEvent(t, w, func(evt Event) bool {
		return evt.Err == nil && evt.Catalog != nil && evt.Catalog.Len() == 2
	})
	if evt.Catalog.Source() != w.Path() {
		t.Fatalf("expected source %s, got %s", w.Path(), evt.Catalog.Source())
	}

	if err := os.WriteFile(path, []byte("- age: nowhere\n  title: bad\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	nextEvent(t, w, func(evt Event) bool { return evt.Err != nil })
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timeline.yaml")
	if err := os.WriteFile(path, []byte(twoEvents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event %#v", evt)
	case <-time.After(100 * time.Millisecond):
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected closed events channel after stop")
	}
}

func TestNewWatcherFailsForMissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "timeline.yaml"), 0); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
