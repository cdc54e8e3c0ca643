package ui

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/pushmenu"
	tea "github.com/charmbracelet/bubbletea"
)

func loadTestDocument(t *testing.T, name string) *dom.Document {
	t.Helper()
	doc, err := dom.Load(filepath.Join("..", "..", "testdata", name), dom.DefaultMarkers())
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return doc
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := NewModel(loadTestDocument(t, "menu.html"), opts)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func press(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func altDigit(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if quits(c) {
				return true
			}
		}
	}
	return false
}

func frontTitle(m *Model) string {
	if front := m.Menu().Tree().Front(); front != nil {
		return front.Title
	}
	return ""
}

func TestNewModelStartsClosed(t *testing.T) {
	m := newTestModel(t, Options{})
	tree := m.Menu().Tree()
	if tree.Open() || tree.CurrentLevel() != 0 {
		t.Fatalf("expected closed menu, got open=%t current=%d", tree.Open(), tree.CurrentLevel())
	}
	if got := m.offsets.Get(tree.Root).String(); got != "translate(-100%, 0)" {
		t.Fatalf("expected root off-screen, got %s", got)
	}
	if len(m.panels) != len(tree.Levels) {
		t.Fatalf("expected a panel per level, got %d for %d levels", len(m.panels), len(tree.Levels))
	}
	if m.page == nil || m.page.ID != pageID {
		t.Fatalf("expected page element, got %v", m.page)
	}
}

func TestNewModelAppliesDefaults(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.opts.RootID != pushmenu.DefaultRootID || m.opts.TriggerID != pushmenu.DefaultTriggerID {
		t.Fatalf("unexpected ids %q/%q", m.opts.RootID, m.opts.TriggerID)
	}
	if m.opts.Menu != pushmenu.DefaultConfig() {
		t.Fatalf("expected default menu config, got %#v", m.opts.Menu)
	}
}

func TestNewModelRejectsMissingRoot(t *testing.T) {
	_, err := NewModel(loadTestDocument(t, "menu.html"), Options{RootID: "nope"})
	if err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestNewModelFixedDimensions(t *testing.T) {
	m := newTestModel(t, Options{Width: 50, Height: 12})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 50 || m.height != 12 {
		t.Fatalf("expected fixed dimensions to win, got %dx%d", m.width, m.height)
	}

	free := newTestModel(t, Options{})
	free.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if free.width != 100 || free.height != 40 {
		t.Fatalf("expected resize to apply, got %dx%d", free.width, free.height)
	}
}

func TestHandlerRegistryCoversMessages(t *testing.T) {
	m := newTestModel(t, Options{})
	for _, msg := range []tea.Msg{tea.KeyMsg{}, tea.MouseMsg{}, tea.WindowSizeMsg{}, watchEventMsg{}, watchDoneMsg{}, reloadedMsg{}} {
		if m.handlerFor(msg) == nil {
			t.Fatalf("expected handler for %T", msg)
		}
	}
	if m.handlerFor(struct{}{}) != nil {
		t.Fatalf("expected no handler for unknown message")
	}
}
