package pushmenu

import (
	"fmt"

	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/logging/events"
)

// LevelState is the derived visual state of a level.
type LevelState int

const (
	StateClosed LevelState = iota
	StateOpen
	StateOverlaid
)

func (s LevelState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateOverlaid:
		return "overlaid"
	default:
		return "closed"
	}
}

// Level is one sliding panel.
type Level struct {
	Element *dom.Element
	// Parent is the nearest enclosing level, nil for top-level panels.
	Parent *Level
	Name   string
	Title  string
	// Items are the entries whose nearest enclosing level is this one.
	Items []*Item
	// Back is the first back-link belonging to this level, if any.
	Back *BackLink

	depth    int
	open     bool
	overlaid bool
}

// Depth is the level's distance from the menu root, counted along levels and
// including itself. It is fixed at construction.
func (l *Level) Depth() int { return l.depth }

// IsOpen reports whether the level is part of the visible chain.
func (l *Level) IsOpen() bool { return l.open }

// IsOverlaid reports whether the level is shadowed by the panel opening above it.
func (l *Level) IsOverlaid() bool { return l.overlaid }

// State folds the open and overlaid flags into one value.
func (l *Level) State() LevelState {
	switch {
	case l.overlaid:
		return StateOverlaid
	case l.open:
		return StateOpen
	default:
		return StateClosed
	}
}

func (l *Level) String() string {
	return fmt.Sprintf("%s(depth=%d %s)", l.Name, l.depth, l.State())
}

// Item is a navigable entry. Items owning a sub-level are openers.
type Item struct {
	Element   *dom.Element
	Label     string
	Activator *dom.Element
	Level     *Level
	Sub       *Level
}

// IsOpener reports whether activating the item descends into a sub-level.
func (i *Item) IsOpener() bool { return i.Sub != nil && i.Activator != nil }

// BackLink closes its level and returns to the parent.
type BackLink struct {
	Element *dom.Element
	Level   *Level
}

// Tree is the indexed hierarchy plus the navigation state that mutates over
// it. Nodes are fixed after construction; only flags, the current level and
// the open flag change.
type Tree struct {
	Root      *dom.Element
	Levels    []*Level
	Items     []*Item
	BackLinks []*BackLink

	byElement map[*dom.Element]*Level
	open      bool
	current   int
}

// Open reports whether the menu is showing any level.
func (t *Tree) Open() bool { return t.open }

// CurrentLevel is the depth of the deepest open level, 0 when closed.
func (t *Tree) CurrentLevel() int { return t.current }

// LevelFor returns the level whose container is el.
func (t *Tree) LevelFor(el *dom.Element) (*Level, bool) {
	l, ok := t.byElement[el]
	return l, ok
}

// Front returns the deepest open level, nil when the menu is closed.
func (t *Tree) Front() *Level {
	var front *Level
	for _, l := range t.Levels {
		if l.open && l.depth == t.current {
			front = l
		}
	}
	return front
}

// Chain returns the open levels ordered by depth, shallowest first.
func (t *Tree) Chain() []*Level {
	front := t.Front()
	if front == nil {
		return nil
	}
	var chain []*Level
	for l := front; l != nil; l = l.Parent {
		chain = append([]*Level{l}, chain...)
	}
	return chain
}

// Index walks the hierarchy under root once and assigns every level its depth.
func Index(root *dom.Element, cfg Config) (*Tree, error) {
	bound := root.Count()
	t := &Tree{Root: root, byElement: make(map[*dom.Element]*Level)}
	for i, el := range root.Query(dom.HasClass(cfg.LevelMarker)) {
		depth, err := ComputeDepth(el, root.ID, cfg.LevelMarker, bound)
		if err != nil {
			return nil, err
		}
		l := &Level{Element: el, Name: levelName(el, i), depth: depth}
		if heading := el.First(dom.HasTag("h2")); heading != nil {
			l.Title = heading.Label()
		}
		t.Levels = append(t.Levels, l)
		t.byElement[el] = l
		events.Menu.Index(l.Name, depth)
	}
	for _, l := range t.Levels {
		if el := l.Element.Parent; el != nil {
			l.Parent = t.enclosing(el, cfg.LevelMarker)
		}
	}
	for _, el := range root.Query(dom.HasTag("li")) {
		item := &Item{Element: el, Level: t.enclosing(el, cfg.LevelMarker)}
		item.Activator = el.First(dom.HasTag("a"))
		if sub := el.First(dom.HasClass(cfg.LevelMarker)); sub != nil {
			item.Sub = t.byElement[sub]
		}
		item.Label = item.Activator.Label()
		if item.Label == "" {
			item.Label = el.Label()
		}
		t.Items = append(t.Items, item)
		if item.Level != nil {
			item.Level.Items = append(item.Level.Items, item)
		}
	}
	for _, el := range root.Query(dom.HasClass(cfg.BackMarker)) {
		back := &BackLink{Element: el, Level: t.enclosing(el, cfg.LevelMarker)}
		t.BackLinks = append(t.BackLinks, back)
		if back.Level != nil && back.Level.Back == nil {
			back.Level.Back = back
		}
	}
	return t, nil
}

func (t *Tree) enclosing(el *dom.Element, marker string) *Level {
	if c := el.Closest(marker); c != nil {
		return t.byElement[c]
	}
	return nil
}

func levelName(el *dom.Element, idx int) string {
	if el.ID != "" {
		return el.ID
	}
	return fmt.Sprintf("level-%d", idx)
}
