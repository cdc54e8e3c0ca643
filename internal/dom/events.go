package dom

// Activation is a click-equivalent signal travelling from Target up to the
// document.
type Activation struct {
	Target  *Element
	Current *Element

	stopped   bool
	prevented bool
}

// StopPropagation keeps the activation from reaching any further ancestor or
// the document listeners.
func (a *Activation) StopPropagation() { a.stopped = true }

// PreventDefault records that the host should skip its default action.
func (a *Activation) PreventDefault() { a.prevented = true }

// Stopped reports whether a handler stopped propagation.
func (a *Activation) Stopped() bool { return a.stopped }

// DefaultPrevented reports whether a handler suppressed the default action.
func (a *Activation) DefaultPrevented() bool { return a.prevented }

// Handler reacts to an activation.
type Handler func(*Activation)

// Dispatcher delivers activations with bubbling semantics. It is not safe for
// concurrent use; hosts deliver one activation at a time.
type Dispatcher struct {
	handlers map[*Element][]Handler
	document []Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[*Element][]Handler)}
}

// Bind attaches h to el. Handlers on the same element run in bind order.
func (d *Dispatcher) Bind(el *Element, h Handler) {
	if el == nil || h == nil {
		return
	}
	d.handlers[el] = append(d.handlers[el], h)
}

// BindDocument attaches h at document level; it sees every activation that
// was not stopped on the way up.
func (d *Dispatcher) BindDocument(h Handler) {
	if h == nil {
		return
	}
	d.document = append(d.document, h)
}

// Activate delivers an activation on target and returns it so the host can
// inspect propagation and default state.
func (d *Dispatcher) Activate(target *Element) *Activation {
	act := &Activation{Target: target}
	for el := target; el != nil; el = el.Parent {
		act.Current = el
		for _, h := range d.handlers[el] {
			h(act)
		}
		if act.stopped {
			return act
		}
	}
	act.Current = nil
	for _, h := range d.document {
		h(act)
		if act.stopped {
			break
		}
	}
	return act
}
