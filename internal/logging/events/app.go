package events

import "github.com/atomicstack/history-timeline/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Resize(width, height int, compact bool) {
	logging.Trace("app.resize", map[string]interface{}{"width": width, "height": height, "compact": compact})
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
