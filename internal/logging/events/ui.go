package events

import "github.com/atomicstack/history-timeline/internal/logging"

type NavTracer struct{}

type ScrollTracer struct{}

var (
	Nav    = NavTracer{}
	Scroll = ScrollTracer{}
)

func (NavTracer) Category(from, to string, generation int) {
	logging.Trace("nav.category", map[string]interface{}{"from": from, "to": to, "generation": generation})
}

func (NavTracer) Cursor(category string, index int, source string) {
	logging.Trace("nav.cursor", map[string]interface{}{"category": category, "index": index, "source": source})
}

func (NavTracer) Search(query string, index int) {
	logging.Trace("nav.search", map[string]interface{}{"query": query, "index": index})
}

func (NavTracer) SearchCancel(restored int) {
	logging.Trace("nav.search-cancel", map[string]interface{}{"restored": restored})
}

func (ScrollTracer) User(offset, delta, derived int) {
	logging.Trace("scroll.user", map[string]interface{}{"offset": offset, "delta": delta, "derived": derived})
}

func (ScrollTracer) Align(index, target int, smooth bool) {
	logging.Trace("scroll.align", map[string]interface{}{"index": index, "target": target, "smooth": smooth})
}

func (ScrollTracer) Settle(index, offset int) {
	logging.Trace("scroll.settle", map[string]interface{}{"index": index, "offset": offset})
}

// Divergence records an alignment that settled on a section other than the
// active cursor.
func (ScrollTracer) Divergence(index, derived, offset int) {
	logging.Trace("scroll.divergence", map[string]interface{}{"index": index, "derived": derived, "offset": offset})
}

func (ScrollTracer) Stale(kind string, token int) {
	logging.Trace("scroll.stale", map[string]interface{}{"kind": kind, "token": token})
}
