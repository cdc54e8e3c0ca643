package pushmenu

import "github.com/atomicstack/pushmenu/internal/logging/events"

// Machine drives level transitions over a Tree and pushes the resulting
// offsets to a TransformApplier. It never inspects activations; callers
// decide whether a transition is allowed.
type Machine struct {
	tree    *Tree
	spacing float64
	applier TransformApplier
}

// NewMachine binds a state machine to an indexed tree.
func NewMachine(tree *Tree, spacing float64, applier TransformApplier) *Machine {
	if applier == nil {
		applier = NewOffsetTable()
	}
	return &Machine{tree: tree, spacing: spacing, applier: applier}
}

// Tree returns the tree the machine mutates.
func (m *Machine) Tree() *Tree { return m.tree }

// OpenLevel advances one level. A nil target opens the first level and is
// only accepted while the menu is closed; a non-nil target becomes the new
// front panel. It reports whether the transition happened.
func (m *Machine) OpenLevel(target *Level) bool {
	t := m.tree
	if target == nil && t.current != 0 {
		events.Menu.Ignored("open", t.current, events.ReasonAlreadyOpen)
		return false
	}
	if target == nil && len(t.Levels) == 0 {
		return false
	}
	levelFactor := float64(t.current) * m.spacing
	m.applier.Apply(t.Root, Translate(levelFactor))
	t.current++

	if target != nil {
		m.applier.Apply(target.Element, Neutral())
		for _, l := range t.Levels {
			if l != target && !l.open {
				m.applier.Apply(l.Element, OffScreen(levelFactor))
			}
		}
	}
	if t.current == 1 {
		t.open = true
	}
	opened := target
	if opened == nil {
		opened = t.Levels[0]
	}
	opened.open = true
	events.Menu.Open(opened.Name, t.current)
	return true
}

// CloseToLevel collapses the menu back to target. Zero resets the menu;
// targets outside [0, CurrentLevel] are clamped.
func (m *Machine) CloseToLevel(target int) {
	t := m.tree
	if target > t.current {
		target = t.current
	}
	if target <= 0 {
		m.reset()
		return
	}
	t.current = target
	m.applier.Apply(t.Root, Translate(float64(target-1)*m.spacing))
	m.normalizeLevels()
	events.Menu.Close(target)
}

// Overlay marks l as shadowed by the level opening above it. Any other
// overlaid level is cleared first.
func (m *Machine) Overlay(l *Level) {
	if l == nil {
		return
	}
	for _, other := range m.tree.Levels {
		other.overlaid = false
	}
	l.overlaid = true
}

func (m *Machine) reset() {
	t := m.tree
	t.current = 0
	t.open = false
	m.applier.Apply(t.Root, OffScreen(0))
	m.normalizeLevels()
	events.Menu.Reset()
}

// normalizeLevels hides every level beyond the visible chain and un-shadows
// the front panel.
func (m *Machine) normalizeLevels() {
	t := m.tree
	for _, l := range t.Levels {
		switch {
		case l.depth >= t.current+1:
			l.open = false
			l.overlaid = false
		case l.depth == t.current:
			l.overlaid = false
		}
	}
}
