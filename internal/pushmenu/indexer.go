package pushmenu

import (
	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/cockroachdb/errors"
)

// ComputeDepth returns the number of marker-bearing elements between node
// (inclusive) and the element identified by rootID (exclusive). The walk
// visits at most bound elements; exhausting the chain or the bound without
// meeting the root is a configuration error marked ErrMalformedHierarchy.
func ComputeDepth(node *dom.Element, rootID, marker string, bound int) (int, error) {
	if rootID == "" {
		return 0, errors.Mark(errors.New("menu root has no identifier"), ErrMalformedHierarchy)
	}
	depth := 0
	steps := 0
	for el := node; el != nil; el = el.Parent {
		if steps >= bound {
			return 0, errors.Mark(
				errors.Newf("level %s: visited %d elements without reaching #%s", node, steps, rootID),
				ErrMalformedHierarchy)
		}
		steps++
		if el.ID == rootID {
			return depth, nil
		}
		if el.HasClass(marker) {
			depth++
		}
	}
	return 0, errors.Mark(
		errors.Newf("level %s: ancestor chain ends before reaching #%s", node, rootID),
		ErrMalformedHierarchy)
}
