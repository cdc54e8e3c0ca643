package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTriggerKeyTogglesMenu(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(press(tea.KeyCtrlO))
	tree := h.Model().Menu().Tree()
	if !tree.Open() || tree.CurrentLevel() != 1 {
		t.Fatalf("expected first level open, got open=%t current=%d", tree.Open(), tree.CurrentLevel())
	}
	if got := frontTitle(h.Model()); got != "All Categories" {
		t.Fatalf("expected All Categories in front, got %q", got)
	}
	h.Send(press(tea.KeyCtrlO))
	if tree.Open() || tree.CurrentLevel() != 0 {
		t.Fatalf("expected menu closed again, got current=%d", tree.CurrentLevel())
	}
}

func TestEnterOnOpenerPushesLevel(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(press(tea.KeyCtrlO))
	h.Send(press(tea.KeyEnter))
	m := h.Model()
	if got := frontTitle(m); got != "Devices" {
		t.Fatalf("expected Devices in front, got %q", got)
	}
	tree := m.Menu().Tree()
	if tree.CurrentLevel() != 2 {
		t.Fatalf("expected depth 2, got %d", tree.CurrentLevel())
	}
	if !tree.Levels[0].IsOverlaid() {
		t.Fatalf("expected parent level overlaid")
	}
	if got := m.offsets.Get(tree.Root).String(); got != "translate(40, 0)" {
		t.Fatalf("expected root pushed by one spacing, got %s", got)
	}
}

func TestEnterOnLeafReportsSelection(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(press(tea.KeyCtrlO))
	h.Send(press(tea.KeyDown))
	h.Send(press(tea.KeyDown))
	h.Send(press(tea.KeyEnter))
	m := h.Model()
	if m.Selected() == nil || m.Selected().Label != "Store" {
		t.Fatalf("expected Store selected, got %v", m.Selected())
	}
	if m.currentInfo() != "Selected Store" {
		t.Fatalf("unexpected info %q", m.currentInfo())
	}
	if m.Menu().Tree().CurrentLevel() != 1 {
		t.Fatalf("expected menu to stay on first level")
	}
}

func TestBackKeyRestoresOpenerCursor(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(press(tea.KeyCtrlO))
	h.Send(press(tea.KeyDown))
	h.Send(press(tea.KeyEnter))
	m := h.Model()
	if got := frontTitle(m); got != "Magazines" {
		t.Fatalf("expected Magazines in front, got %q", got)
	}
	h.Send(press(tea.KeyEsc))
	if got := frontTitle(m); got != "All Categories" {
		t.Fatalf("expected All Categories after back, got %q", got)
	}
	if p := m.frontPanel(); p.Cursor != 1 {
		t.Fatalf("expected cursor on Magazines, got %d", p.Cursor)
	}
	if m.Menu().Tree().Levels[0].IsOverlaid() {
		t.Fatalf("expected front level no longer overlaid")
	}
}

func TestBackKeyOnFirstLevelClosesThenQuits(t *testing.T) {
	m := newTestModel(t, Options{})
	h := NewHarness(m)
	h.Send(press(tea.KeyCtrlO))
	h.Send(press(tea.KeyLeft))
	if m.Menu().Tree().Open() {
		t.Fatalf("expected back on the first level to close the menu")
	}
	_, cmd := m.Update(press(tea.KeyEsc))
	if !quits(cmd) {
		t.Fatalf("expected esc on a closed menu to quit")
	}
}

func TestQuitKeyOnlyWhenNotFiltering(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(runes("q"))
	if !quits(cmd) {
		t.Fatalf("expected q to quit while closed")
	}

	open := newTestModel(t, Options{})
	h := NewHarness(open)
	h.Send(press(tea.KeyCtrlO))
	_, cmd = open.Update(runes("q"))
	if quits(cmd) {
		t.Fatalf("expected q to filter while open")
	}
	if open.frontPanel().Filter != "q" {
		t.Fatalf("expected q in filter, got %q", open.frontPanel().Filter)
	}
	_, cmd = open.Update(press(tea.KeyCtrlC))
	if !quits(cmd) {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestAltDigitActivatesLevelSurface(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(press(tea.KeyCtrlO))
	h.Send(press(tea.KeyEnter)) // Devices
	h.Send(press(tea.KeyDown))
	h.Send(press(tea.KeyEnter)) // Televisions
	m := h.Model()
	if got := frontTitle(m); got != "Televisions" {
		t.Fatalf("expected Televisions in front, got %q", got)
	}

	h.Send(altDigit('2'))
	if got := frontTitle(m); got != "Devices" {
		t.Fatalf("expected collapse to Devices, got %q", got)
	}
	if p := m.frontPanel(); p.Cursor != 1 {
		t.Fatalf("expected cursor restored to Televisions, got %d", p.Cursor)
	}

	h.Send(altDigit('5'))
	if !strings.Contains(m.currentInfo(), "depth 5") {
		t.Fatalf("expected info about missing level, got %q", m.currentInfo())
	}
	if m.Menu().Tree().CurrentLevel() != 2 {
		t.Fatalf("expected state untouched")
	}
}

func TestClosingLevelClearsItsFilter(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(press(tea.KeyCtrlO))
	h.Send(press(tea.KeyEnter))
	m := h.Model()
	devices := m.frontPanel()
	m.handleTextInput(runes("tel"))
	if len(devices.Items) != 1 {
		t.Fatalf("expected filter to narrow Devices, got %d items", len(devices.Items))
	}
	h.Send(press(tea.KeyEsc))
	if devices.Filter != "" || len(devices.Items) != 3 {
		t.Fatalf("expected closed level filter cleared, got %q (%d items)", devices.Filter, len(devices.Items))
	}
}

func TestCursorKeysWrapOnFrontPanel(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(press(tea.KeyUp))
	h.Send(press(tea.KeyCtrlO))
	h.Send(press(tea.KeyUp))
	p := h.Model().frontPanel()
	if p.Cursor != 3 {
		t.Fatalf("expected wrap to Collections, got %d", p.Cursor)
	}
	h.Send(press(tea.KeyHome))
	if p.Cursor != 0 {
		t.Fatalf("expected home to reach first item, got %d", p.Cursor)
	}
	h.Send(press(tea.KeyEnd))
	if p.Cursor != 3 {
		t.Fatalf("expected end to reach last item, got %d", p.Cursor)
	}
}
