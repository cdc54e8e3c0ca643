package pushmenu

import (
	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/logging/events"
)

// EventSource registers activation handlers on the host hierarchy.
// dom.Dispatcher is the in-process implementation.
type EventSource interface {
	Bind(el *dom.Element, h dom.Handler)
	BindDocument(h dom.Handler)
}

// Router translates activation signals into state machine calls. Each signal
// method reports whether it changed state; handlers bound by Bind use that to
// decide propagation.
type Router struct {
	machine *Machine
	rootID  string
	// armed is set when the trigger opens the menu and cleared when an
	// outside activation closes it.
	armed bool
}

// NewRouter creates a router for machine. rootID delimits the menu for
// outside detection.
func NewRouter(machine *Machine, rootID string) *Router {
	return &Router{machine: machine, rootID: rootID}
}

// Trigger toggles the menu: it opens the first level when closed and resets
// it when open.
func (r *Router) Trigger() bool {
	t := r.machine.tree
	if t.open {
		r.machine.CloseToLevel(0)
		return true
	}
	if !r.machine.OpenLevel(nil) {
		return false
	}
	r.armed = true
	return true
}

// SubOpener opens sub when the level holding its opener is not buried under
// the current chain.
func (r *Router) SubOpener(sub *Level, ancestorDepth int) bool {
	t := r.machine.tree
	if sub == nil {
		return false
	}
	if t.current > ancestorDepth {
		events.Menu.Ignored("sub-opener", ancestorDepth, events.ReasonBuriedOpener)
		return false
	}
	// An opener on a panel that is not showing cannot be reached.
	if sub.Parent != nil && !sub.Parent.open {
		events.Menu.Ignored("sub-opener", ancestorDepth, events.ReasonNotOpen)
		return false
	}
	r.machine.Overlay(sub.Parent)
	return r.machine.OpenLevel(sub)
}

// LevelBackground handles an activation on a level's own surface. A covered
// level collapses the chain back to itself; the front level closes one step.
func (r *Router) LevelBackground(depth int) bool {
	t := r.machine.tree
	switch {
	case !t.open:
		events.Menu.Ignored("level", depth, events.ReasonNotOpen)
		return false
	case t.current > depth:
		r.machine.CloseToLevel(depth)
		return true
	case t.current == depth:
		r.machine.CloseToLevel(depth - 1)
		return true
	default:
		events.Menu.Ignored("level", depth, events.ReasonCoveredLevel)
		return false
	}
}

// BackLink closes the level at depth when it is the front panel (or deeper
// than the current chain), returning to its parent.
func (r *Router) BackLink(depth int) bool {
	t := r.machine.tree
	if t.current > depth {
		events.Menu.Ignored("back", depth, events.ReasonCoveredLevel)
		return false
	}
	r.machine.CloseToLevel(depth - 1)
	return true
}

// Outside resets the menu once after the trigger opened it. Later outside
// activations are ignored until the trigger opens the menu again.
func (r *Router) Outside() bool {
	t := r.machine.tree
	if !r.armed {
		events.Menu.Ignored("outside", t.current, events.ReasonUnarmed)
		return false
	}
	if !t.open {
		return false
	}
	r.armed = false
	r.machine.CloseToLevel(0)
	return true
}

// Bind attaches the router's handlers to src. It must be called once per
// router; the outside listener is a single persistent document handler.
func (r *Router) Bind(src EventSource, trigger *dom.Element) {
	t := r.machine.tree
	src.Bind(trigger, func(a *dom.Activation) {
		a.StopPropagation()
		a.PreventDefault()
		r.Trigger()
	})
	for _, item := range t.Items {
		if !item.IsOpener() || item.Level == nil {
			continue
		}
		item := item
		src.Bind(item.Activator, func(a *dom.Activation) {
			a.PreventDefault()
			if r.SubOpener(item.Sub, item.Level.depth) {
				a.StopPropagation()
			}
		})
	}
	for _, l := range t.Levels {
		l := l
		src.Bind(l.Element, func(a *dom.Activation) {
			a.StopPropagation()
			r.LevelBackground(l.depth)
		})
	}
	for _, back := range t.BackLinks {
		if back.Level == nil {
			continue
		}
		back := back
		src.Bind(back.Element, func(a *dom.Activation) {
			a.PreventDefault()
			if r.BackLink(back.Level.depth) {
				a.StopPropagation()
			}
		})
	}
	src.BindDocument(func(a *dom.Activation) {
		if a.Target.Within(r.rootID) {
			return
		}
		r.Outside()
	})
}
