package dom

import "strings"

// Element is one node of the host hierarchy. Only element nodes are kept;
// text is folded into Text on the element that owns it.
type Element struct {
	ID       string
	Tag      string
	Classes  []string
	Text     string
	Attrs    map[string]string
	Parent   *Element
	Children []*Element
}

// Document is a parsed hierarchy rooted at Body.
type Document struct {
	Body *Element
	// RootID and TriggerID are the ids the source declared for the menu root
	// and trigger. HTML markup declares none.
	RootID    string
	TriggerID string
}

// NewElement creates a detached element.
func NewElement(tag, id string, classes ...string) *Element {
	return &Element{
		ID:      id,
		Tag:     strings.ToLower(tag),
		Classes: append([]string(nil), classes...),
		Attrs:   map[string]string{},
	}
}

// Append attaches children to e in order and returns e.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.Parent = e
		e.Children = append(e.Children, child)
	}
	return e
}

// HasClass reports whether the element carries the class name.
func (e *Element) HasClass(class string) bool {
	if e == nil || class == "" {
		return false
	}
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Closest returns the nearest ancestor-or-self carrying class.
func (e *Element) Closest(class string) *Element {
	for el := e; el != nil; el = el.Parent {
		if el.HasClass(class) {
			return el
		}
	}
	return nil
}

// Within reports whether e is the element with the given id or one of its
// descendants.
func (e *Element) Within(id string) bool {
	if id == "" {
		return false
	}
	for el := e; el != nil; el = el.Parent {
		if el.ID == id {
			return true
		}
	}
	return false
}

// Query returns every descendant of e matching pred, in document order.
// e itself is not considered.
func (e *Element) Query(pred func(*Element) bool) []*Element {
	var out []*Element
	e.walk(func(el *Element) bool {
		if pred(el) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// First returns the first descendant of e matching pred.
func (e *Element) First(pred func(*Element) bool) *Element {
	var found *Element
	e.walk(func(el *Element) bool {
		if pred(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// Count returns the number of elements in the subtree rooted at e, including e.
func (e *Element) Count() int {
	if e == nil {
		return 0
	}
	n := 1
	e.walk(func(*Element) bool {
		n++
		return true
	})
	return n
}

// Label returns the element's visible text, trimmed.
func (e *Element) Label() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text)
}

// String identifies the element for logs.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.Tag)
	if e.ID != "" {
		b.WriteByte('#')
		b.WriteString(e.ID)
	}
	for _, c := range e.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

// walk visits descendants depth-first, pre-order. Returning false from fn
// stops the walk.
func (e *Element) walk(fn func(*Element) bool) bool {
	if e == nil {
		return true
	}
	for _, child := range e.Children {
		if !fn(child) {
			return false
		}
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// ByID finds the element with the given id anywhere in the document.
func (d *Document) ByID(id string) *Element {
	if d == nil || d.Body == nil || id == "" {
		return nil
	}
	if d.Body.ID == id {
		return d.Body
	}
	return d.Body.First(func(el *Element) bool { return el.ID == id })
}

// HasTag returns a predicate matching elements with the tag name.
func HasTag(tag string) func(*Element) bool {
	tag = strings.ToLower(tag)
	return func(el *Element) bool { return el.Tag == tag }
}

// HasClass returns a predicate matching elements carrying class.
func HasClass(class string) func(*Element) bool {
	return func(el *Element) bool { return el.HasClass(class) }
}
