// Package pushmenu implements a multi-level push menu: a tree of nested
// levels that slide horizontally as the user drills down or backs up.
//
// The package is split along the same lines as the widget it models:
//   - Index walks the host hierarchy once and fixes every level's depth.
//   - Machine owns the current level and the open flag and computes the
//     offset every level must carry after each transition.
//   - Router turns activation signals (trigger, sub-opener, level surface,
//     back-link, outside) into Machine calls and decides propagation.
//   - A TransformApplier receives the offsets; OffsetTable records them for
//     hosts that render from a table.
//
// Nothing here blocks or spawns goroutines. Hosts deliver one activation at a
// time, and each Menu owns its own tree, so independent menus never share
// state.
package pushmenu
