package events

import "github.com/atomicstack/pushmenu/internal/logging"

type MenuTracer struct{}

type ignoreReason string

const (
	ReasonAlreadyOpen  ignoreReason = "already-open"
	ReasonBuriedOpener ignoreReason = "buried-opener"
	ReasonCoveredLevel ignoreReason = "covered-level"
	ReasonNotOpen      ignoreReason = "not-open"
	ReasonUnarmed      ignoreReason = "unarmed"
)

var Menu = MenuTracer{}

func (MenuTracer) Index(level string, depth int) {
	logging.Trace("menu.index", map[string]interface{}{"level": level, "depth": depth})
}

func (MenuTracer) Open(level string, current int) {
	logging.Trace("menu.open", map[string]interface{}{"level": level, "current": current})
}

func (MenuTracer) Close(target int) {
	logging.Trace("menu.close", map[string]interface{}{"target": target})
}

func (MenuTracer) Reset() {
	logging.Trace("menu.reset", nil)
}

func (MenuTracer) Ignored(signal string, depth int, reason ignoreReason) {
	logging.Trace("menu.ignored", map[string]interface{}{"signal": signal, "depth": depth, "reason": string(reason)})
}

func (MenuTracer) Transform(target, offset string) {
	logging.Trace("menu.transform", map[string]interface{}{"target": target, "offset": offset})
}
