package state

import "github.com/atomicstack/pushmenu/internal/pushmenu"

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []*pushmenu.Item) []*pushmenu.Item {
	dup := make([]*pushmenu.Item, len(items))
	copy(dup, items)
	return dup
}
