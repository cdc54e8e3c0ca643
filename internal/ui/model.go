package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/pushmenu/internal/backend"
	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/pushmenu"
	"github.com/atomicstack/pushmenu/internal/theme"
	uistate "github.com/atomicstack/pushmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const pageID = "page"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	RootID     string
	TriggerID  string
	Menu       pushmenu.Config
	Width      int
	Height     int
	ShowFooter bool
	Watcher    *backend.Watcher
	// Reload re-reads the menu description after the watcher reports a
	// change. Without it change events are ignored.
	Reload func() (*dom.Document, error)
}

// Model implements the Bubble Tea model hosting one push menu.
type Model struct {
	opts Options

	doc     *dom.Document
	menu    *pushmenu.Menu
	events  *dom.Dispatcher
	offsets *pushmenu.OffsetTable
	page    *dom.Element
	panels  map[*pushmenu.Level]*uistate.Panel

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	selected    *pushmenu.Item
	reloads     int

	keys              keyMap
	help              help.Model
	filterCursor      cursor.Model
	filterCursorDirty bool
	watcher           *backend.Watcher

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the menu described by doc and wraps it in a Bubble Tea
// model. The menu starts closed.
func NewModel(doc *dom.Document, opts Options) (*Model, error) {
	if opts.RootID == "" {
		opts.RootID = pushmenu.DefaultRootID
	}
	if opts.TriggerID == "" {
		opts.TriggerID = pushmenu.DefaultTriggerID
	}
	if opts.Menu == (pushmenu.Config{}) {
		opts.Menu = pushmenu.DefaultConfig()
	}
	m := &Model{
		opts:       opts,
		showFooter: opts.ShowFooter,
		keys:       newKeyMap(),
		help:       help.New(),
		watcher:    opts.Watcher,
	}
	if err := m.mount(doc); err != nil {
		return nil, err
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m, nil
}

// mount constructs a fresh menu instance over doc. The previous instance, if
// any, is dropped along with its bindings and view state.
func (m *Model) mount(doc *dom.Document) error {
	dispatcher := dom.NewDispatcher()
	offsets := pushmenu.NewOffsetTable()
	menu, err := pushmenu.FromDocument(doc, m.opts.RootID, m.opts.TriggerID,
		dispatcher, pushmenu.TracingApplier{Next: offsets}, m.opts.Menu)
	if err != nil {
		return err
	}
	m.doc = doc
	m.menu = menu
	m.events = dispatcher
	m.offsets = offsets
	m.page = doc.ByID(pageID)
	if m.page == nil {
		m.page = doc.Body
	}
	m.panels = make(map[*pushmenu.Level]*uistate.Panel, len(menu.Tree().Levels))
	for _, l := range menu.Tree().Levels {
		m.panels[l] = uistate.NewPanel(l)
	}
	m.selected = nil
	return nil
}

// Menu exposes the hosted menu instance.
func (m *Model) Menu() *pushmenu.Menu {
	return m.menu
}

// Selected returns the leaf item chosen most recently, if any.
func (m *Model) Selected() *pushmenu.Item {
	return m.selected
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForWatchEvent(m.watcher))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(watchEventMsg{}):     m.handleWatchEventMsg,
		reflect.TypeOf(watchDoneMsg{}):      m.handleWatchDoneMsg,
		reflect.TypeOf(reloadedMsg{}):       m.handleReloadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
