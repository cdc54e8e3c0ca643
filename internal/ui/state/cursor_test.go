package state

import (
	"testing"

	"github.com/atomicstack/pushmenu/internal/pushmenu"
)

func newTestPanel(labels ...string) *Panel {
	items := make([]*pushmenu.Item, len(labels))
	for i, label := range labels {
		items[i] = &pushmenu.Item{Label: label}
	}
	return NewPanel(&pushmenu.Level{Name: "test", Items: items})
}

func TestCursorMovement(t *testing.T) {
	phones := []string{"Apple", "Samsung", "Nokia", "Sony", "Motorola"}
	cases := []struct {
		name   string
		labels []string
		start  int
		move   func(*Panel) bool
		moved  bool
		cursor int
	}{
		{"home", phones, 3, (*Panel).MoveCursorHome, true, 0},
		{"home on empty resets", nil, 5, (*Panel).MoveCursorHome, false, 0},
		{"end", phones, 0, (*Panel).MoveCursorEnd, true, 4},
		{"end on empty", nil, 0, (*Panel).MoveCursorEnd, false, 0},
		{"page down", phones, 0, func(p *Panel) bool { return p.MoveCursorPageDown(2) }, true, 2},
		{"page down clamps", phones, 3, func(p *Panel) bool { return p.MoveCursorPageDown(2) }, true, 4},
		{"page down at end", phones, 4, func(p *Panel) bool { return p.MoveCursorPageDown(2) }, false, 4},
		{"page up clamps", phones, 2, func(p *Panel) bool { return p.MoveCursorPageUp(10) }, true, 0},
		{"up wraps", phones, 0, (*Panel).MoveCursorUp, true, 4},
		{"down wraps", phones, 4, (*Panel).MoveCursorDown, true, 0},
		{"down on empty", nil, 0, (*Panel).MoveCursorDown, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPanel(tc.labels...)
			p.Cursor = tc.start
			if got := tc.move(p); got != tc.moved {
				t.Fatalf("moved = %t, want %t", got, tc.moved)
			}
			if p.Cursor != tc.cursor {
				t.Fatalf("cursor = %d, want %d", p.Cursor, tc.cursor)
			}
		})
	}
}

func TestEnsureCursorVisibleScrollsViewport(t *testing.T) {
	p := newTestPanel("Devices", "Magazines", "Store", "Collections", "Credits")

	p.Cursor = 4
	p.EnsureCursorVisible(2)
	if p.ViewportOffset != 3 {
		t.Fatalf("expected viewport to follow cursor down to 3, got %d", p.ViewportOffset)
	}

	p.Cursor = 1
	p.EnsureCursorVisible(3)
	if p.ViewportOffset != 1 {
		t.Fatalf("expected viewport to follow cursor up to 1, got %d", p.ViewportOffset)
	}

	p.Cursor = -1
	p.EnsureCursorVisible(2)
	if p.Cursor != 0 {
		t.Fatalf("expected negative cursor clamped to 0, got %d", p.Cursor)
	}

	p.ViewportOffset = 4
	p.EnsureCursorVisible(0)
	if p.ViewportOffset != 0 {
		t.Fatalf("expected unknown height to pin viewport at 0, got %d", p.ViewportOffset)
	}
}
