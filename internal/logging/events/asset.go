package events

import (
	"github.com/atomicstack/history-timeline/internal/logging"
)

type AssetTracer struct{}

type CatalogTracer struct{}

var (
	Asset   = AssetTracer{}
	Catalog = CatalogTracer{}
)

func (AssetTracer) Queue(generation int, indices []int) {
	logging.Trace("asset.queue", map[string]interface{}{"generation": generation, "indices": indices})
}

func (AssetTracer) Resolved(generation, count int) {
	logging.Trace("asset.resolved", map[string]interface{}{"generation": generation, "count": count})
}

func (AssetTracer) Stale(generation, current int) {
	logging.Trace("asset.stale", map[string]interface{}{"generation": generation, "current": current})
}

func (AssetTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	logging.Trace("asset.error", map[string]interface{}{"error": err.Error()})
}

func (CatalogTracer) Loaded(source string, count int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"source": source, "count": count})
}

func (CatalogTracer) Reload(source string, count int) {
	logging.Trace("catalog.reload", map[string]interface{}{"source": source, "count": count})
}

func (CatalogTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	logging.Trace("catalog.error", map[string]interface{}{"error": err.Error()})
}
