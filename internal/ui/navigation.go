package ui

import (
	"fmt"

	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/logging/events"
	"github.com/atomicstack/pushmenu/internal/pushmenu"
	uistate "github.com/atomicstack/pushmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	switch {
	case key.Matches(keyMsg, m.keys.Trigger):
		m.activate(m.menu.Trigger)
		return nil
	case key.Matches(keyMsg, m.keys.Surface):
		m.activateSurface(surfaceDepth(keyMsg))
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleBackKey()
	case key.Matches(keyMsg, m.keys.Enter):
		m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor((*uistate.Panel).MoveCursorUp)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor((*uistate.Panel).MoveCursorDown)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(func(p *uistate.Panel) bool { return p.MoveCursorPageUp(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(func(p *uistate.Panel) bool { return p.MoveCursorPageDown(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor((*uistate.Panel).MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor((*uistate.Panel).MoveCursorEnd)
	}
	return nil
}

// activate dispatches an activation on target through the menu's event
// source and reconciles the panels with whatever the router decided.
func (m *Model) activate(target *dom.Element) *dom.Activation {
	if target == nil {
		return nil
	}
	before := m.menu.Tree().Front()
	act := m.events.Activate(target)
	events.UI.Activate(target.String(), act.Stopped())
	m.afterTransition(before)
	return act
}

// handleBackKey activates the front level's back-link, or its surface when
// it has none. With the menu closed it quits.
func (m *Model) handleBackKey() tea.Cmd {
	front := m.menu.Tree().Front()
	if front == nil {
		return tea.Quit
	}
	target := front.Element
	if front.Back != nil {
		target = front.Back.Element
	}
	m.activate(target)
	return nil
}

func (m *Model) handleEnterKey() {
	panel := m.frontPanel()
	if panel == nil {
		return
	}
	item := panel.Current()
	if item == nil {
		return
	}
	if item.IsOpener() {
		m.activate(activatorOf(item))
		return
	}
	m.selectItem(item)
}

func (m *Model) selectItem(item *pushmenu.Item) {
	level := ""
	if item.Level != nil {
		level = item.Level.Name
	}
	events.UI.Select(level, item.Label)
	m.selected = item
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Selected %s", item.Label))
}

// activateSurface activates the level at depth along the open chain.
func (m *Model) activateSurface(depth int) {
	chain := m.menu.Tree().Chain()
	if depth < 1 || depth > len(chain) {
		m.setInfo(fmt.Sprintf("No open level at depth %d", depth))
		return
	}
	m.activate(chain[depth-1].Element)
}

// afterTransition clears filters on levels that closed and puts the cursor
// back on the opener the user came from when the chain shrank.
func (m *Model) afterTransition(before *pushmenu.Level) {
	front := m.menu.Tree().Front()
	for _, l := range m.menu.Tree().Levels {
		if l.IsOpen() {
			continue
		}
		if p := m.panels[l]; p != nil {
			p.ClearFilter()
		}
	}
	if front == nil || front == before {
		return
	}
	panel := m.panels[front]
	if panel == nil {
		return
	}
	if child := childToward(front, before); child != nil {
		for _, item := range panel.Items {
			if item.Sub == child {
				panel.Highlight(item)
				break
			}
		}
	} else {
		panel.Cursor = 0
		panel.ViewportOffset = 0
	}
	m.errMsg = ""
	m.forceClearInfo()
	m.syncViewport(panel)
}

// childToward returns the level directly below ancestor on the path to l, or
// nil when ancestor is not above l.
func childToward(ancestor, l *pushmenu.Level) *pushmenu.Level {
	for ; l != nil; l = l.Parent {
		if l.Parent == ancestor {
			return l
		}
	}
	return nil
}

func activatorOf(item *pushmenu.Item) *dom.Element {
	if item.Activator != nil {
		return item.Activator
	}
	return item.Element
}

func (m *Model) frontPanel() *uistate.Panel {
	front := m.menu.Tree().Front()
	if front == nil {
		return nil
	}
	return m.panels[front]
}

func (m *Model) moveCursor(move func(*uistate.Panel) bool) {
	panel := m.frontPanel()
	if panel == nil {
		return
	}
	if move(panel) {
		events.UI.MenuCursor(panel.ID(), panel.Cursor)
	}
	m.syncViewport(panel)
}

func (m *Model) syncViewport(p *uistate.Panel) {
	if p == nil {
		return
	}
	p.EnsureCursorVisible(m.maxVisibleItems())
}
