package state

import "github.com/atomicstack/pushmenu/internal/pushmenu"

// Panel holds the per-level view state of one menu level: cursor, filter and
// viewport. The level itself stays owned by the pushmenu tree.
type Panel struct {
	Level          *pushmenu.Level
	Items          []*pushmenu.Item
	Full           []*pushmenu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	ViewportOffset int
}

// NewPanel builds the view state for level.
func NewPanel(level *pushmenu.Level) *Panel {
	p := &Panel{Level: level}
	p.UpdateItems(level.Items)
	return p
}

// ID names the panel for trace events.
func (p *Panel) ID() string {
	if p == nil || p.Level == nil {
		return ""
	}
	return p.Level.Name
}

// IndexOf returns the visible index of item, or -1.
func (p *Panel) IndexOf(item *pushmenu.Item) int {
	for i, it := range p.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (p *Panel) Current() *pushmenu.Item {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return nil
	}
	return p.Items[p.Cursor]
}

// UpdateItems replaces the item list, keeping the viewport when possible.
func (p *Panel) UpdateItems(items []*pushmenu.Item) {
	prevOffset := p.ViewportOffset
	p.Full = CloneItems(items)
	p.applyFilter()
	if len(p.Items) == 0 {
		p.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = prevOffset
}
