package events

import "github.com/atomicstack/pushmenu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Activate(target string, stopped bool) {
	logging.Trace("ui.activate", map[string]interface{}{"target": target, "stopped": stopped})
}

func (UITracer) MenuCursor(level string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": level, "cursor": cursor})
}

func (UITracer) Select(level, item string) {
	logging.Trace("ui.select", map[string]interface{}{"level": level, "item": item})
}

func (UITracer) Mouse(x, y int, region string) {
	logging.Trace("ui.mouse", map[string]interface{}{"x": x, "y": y, "region": region})
}

func (FilterTracer) Cleared(level string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": level})
}

func (FilterTracer) Append(level, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": level, "filter": filter})
}

func (FilterTracer) Backspace(level, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": level, "filter": filter})
}

func (FilterTracer) WordBackspace(level, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"level": level, "filter": filter})
}
