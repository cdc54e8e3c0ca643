// Package ui hosts a push menu inside a Bubble Tea program. The terminal is
// the host document: key presses and mouse clicks are turned into element
// activations and dispatched through the menu's event source, and the view
// is drawn from the offsets the menu applied.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, resize, file watcher events).
//   - Navigation helpers (navigation.go) resolve which element a key press
//     stands for (the trigger, an opener, a back-link or a level surface) and
//     activate it. The menu's router decides whether anything changes.
//   - Filter helpers (input.go) keep text entry for the front panel isolated
//     from navigation.
//
// State ownership:
//   - Level depth and open/overlaid flags live in the pushmenu tree.
//   - Cursor, filter and viewport per level live in internal/ui/state.Panel.
//   - Offsets live in a pushmenu.OffsetTable; the view reads the root's offset
//     to decide how far the front panel is pushed and how wide each covered
//     level's strip is.
//
// Reloading:
//   - When a backend.Watcher is supplied, file change events trigger
//     Options.Reload and a fresh menu instance replaces the current one.
package ui
