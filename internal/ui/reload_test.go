package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/pushmenu/internal/backend"
	"github.com/atomicstack/pushmenu/internal/dom"
	tea "github.com/charmbracelet/bubbletea"
)

func TestWatchEventReloadsFreshMenu(t *testing.T) {
	var calls int
	m := newTestModel(t, Options{Reload: func() (*dom.Document, error) {
		calls++
		return loadTestDocument(t, "menu.yaml"), nil
	}})
	h := NewHarness(m)
	h.Send(press(tea.KeyCtrlO))
	before := m.Menu()

	h.Send(watchEventMsg{event: backend.Event{Path: "menu.yaml"}})
	if calls != 1 {
		t.Fatalf("expected one reload, got %d", calls)
	}
	if m.Menu() == before {
		t.Fatalf("expected a new menu instance")
	}
	if m.Menu().Tree().Open() {
		t.Fatalf("expected the reloaded menu to start closed")
	}
	if !before.Tree().Open() {
		t.Fatalf("expected the old instance to be left untouched")
	}
	if m.reloads != 1 || m.currentInfo() != "Menu reloaded" {
		t.Fatalf("unexpected reload bookkeeping: %d %q", m.reloads, m.currentInfo())
	}

	h.Send(press(tea.KeyCtrlO))
	h.Send(press(tea.KeyEnter))
	if got := frontTitle(m); got != "Devices" {
		t.Fatalf("expected reloaded menu to navigate, got %q", got)
	}
}

func TestReloadFailureKeepsCurrentMenu(t *testing.T) {
	m := newTestModel(t, Options{Reload: func() (*dom.Document, error) {
		return nil, errors.New("boom")
	}})
	before := m.Menu()
	NewHarness(m).Send(watchEventMsg{event: backend.Event{Path: "menu.html"}})
	if m.Menu() != before {
		t.Fatalf("expected menu kept after failed reload")
	}
	if !strings.Contains(m.errMsg, "reload failed") {
		t.Fatalf("expected reload error, got %q", m.errMsg)
	}
}

func TestReloadedDocumentWithoutRootIsRejected(t *testing.T) {
	m := newTestModel(t, Options{})
	before := m.Menu()
	m.Update(reloadedMsg{doc: &dom.Document{Body: dom.NewElement("body", "")}})
	if m.Menu() != before || m.errMsg == "" {
		t.Fatalf("expected invalid document to be rejected")
	}
}

func TestWatchErrorSurfaces(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Update(watchEventMsg{event: backend.Event{Err: errors.New("inotify overflow")}})
	if m.errMsg != "inotify overflow" {
		t.Fatalf("expected watcher error shown, got %q", m.errMsg)
	}
	m.Update(watchDoneMsg{})
	if m.watcher != nil {
		t.Fatalf("expected watcher dropped after done")
	}
}
