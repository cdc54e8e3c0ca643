package app

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/atomicstack/pushmenu/internal/backend"
	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/format/table"
	"github.com/atomicstack/pushmenu/internal/logging/events"
	"github.com/atomicstack/pushmenu/internal/pushmenu"
	"github.com/atomicstack/pushmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

// watchSettle is how long the watcher waits for a burst of writes to end
// before reporting a change.
const watchSettle = 200 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	RootID     string
	TriggerID  string
	Width      int
	Height     int
	ShowFooter bool
	Watch      bool
	Dump       bool
	Menu       pushmenu.Config
}

func (c Config) markers() dom.Markers {
	return dom.Markers{Level: c.Menu.LevelMarker, Back: c.Menu.BackMarker}
}

// Load reads the menu description named by cfg.
func Load(cfg Config) (*dom.Document, error) {
	return dom.Load(cfg.MenuPath, cfg.markers())
}

// Run loads the menu and either dumps its levels or executes the Bubble Tea
// program hosting it.
func Run(cfg Config) error {
	doc, err := Load(cfg)
	if err != nil {
		return err
	}
	if cfg.Dump {
		return Dump(os.Stdout, doc, cfg)
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(cfg.MenuPath, watchSettle)
		if err != nil {
			return err
		}
		defer func() {
			watcher.Stop()
			watcher.Wait()
		}()
	}
	model, err := ui.NewModel(doc, ui.Options{
		RootID:     cfg.RootID,
		TriggerID:  cfg.TriggerID,
		Menu:       cfg.Menu,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Watcher:    watcher,
		Reload:     func() (*dom.Document, error) { return Load(cfg) },
	})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Dump writes one row per indexed level: title, id, depth, parent, item and
// opener counts, and the back-link label.
func Dump(w io.Writer, doc *dom.Document, cfg Config) error {
	menu, err := pushmenu.FromDocument(doc, cfg.RootID, cfg.TriggerID, nil, nil, cfg.Menu)
	if err != nil {
		return err
	}
	levels := menu.Tree().Levels
	rows := make([][]string, 0, len(levels)+1)
	rows = append(rows, []string{"LEVEL", "ID", "DEPTH", "PARENT", "ITEMS", "OPENERS", "BACK"})
	for _, l := range levels {
		parent := "-"
		if l.Parent != nil {
			parent = l.Parent.Title
		}
		openers := 0
		for _, item := range l.Items {
			if item.IsOpener() {
				openers++
			}
		}
		back := "-"
		if l.Back != nil {
			back = l.Back.Element.Label()
		}
		rows = append(rows, []string{
			l.Title,
			l.Name,
			strconv.Itoa(l.Depth()),
			parent,
			strconv.Itoa(len(l.Items)),
			strconv.Itoa(openers),
			back,
		})
	}
	events.App.Dump(len(levels))
	lines := table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignLeft,
		table.AlignRight, table.AlignRight, table.AlignLeft,
	})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "write dump")
		}
	}
	return nil
}
