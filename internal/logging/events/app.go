package events

import "github.com/atomicstack/pushmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Dump(levels int) {
	logging.Trace("app.dump", map[string]interface{}{"levels": levels})
}
