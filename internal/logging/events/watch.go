package events

import "github.com/atomicstack/pushmenu/internal/logging"

type WatchTracer struct{}

var Watch = WatchTracer{}

func (WatchTracer) Start(path string) {
	logging.Trace("watch.start", map[string]interface{}{"path": path})
}

func (WatchTracer) Change(path, op string) {
	logging.Trace("watch.change", map[string]interface{}{"path": path, "op": op})
}

func (WatchTracer) Reload(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("watch.reload", payload)
}
