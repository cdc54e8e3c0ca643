package pushmenu

import (
	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/cockroachdb/errors"
)

// Menu is one push menu instance: its indexed tree, state machine and router.
// Instances share nothing, so several menus can live in one process.
type Menu struct {
	Config  Config
	Trigger *dom.Element

	tree    *Tree
	machine *Machine
	router  *Router
}

// New indexes the hierarchy under root and binds the trigger, openers,
// levels and back-links on src. Any indexing error aborts construction.
// On success the root rests off-screen, the closed position.
func New(root, trigger *dom.Element, src EventSource, applier TransformApplier, cfg Config) (*Menu, error) {
	if root == nil {
		return nil, errors.Mark(errors.New("menu root element is nil"), ErrMalformedHierarchy)
	}
	if trigger == nil {
		return nil, errors.Mark(errors.New("menu trigger element is nil"), dom.ErrMissingElement)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if trigger.Within(root.ID) {
		return nil, errors.Mark(
			errors.Newf("trigger %s is inside the menu root #%s", trigger, root.ID),
			ErrMalformedHierarchy)
	}
	tree, err := Index(root, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "index menu")
	}
	if applier == nil {
		applier = NewOffsetTable()
	}
	m := &Menu{
		Config:  cfg,
		Trigger: trigger,
		tree:    tree,
		machine: NewMachine(tree, cfg.LevelSpacing, applier),
	}
	m.router = NewRouter(m.machine, root.ID)
	applier.Apply(root, OffScreen(0))
	if src != nil {
		m.router.Bind(src, trigger)
	}
	return m, nil
}

// FromDocument looks up the root and trigger by id and constructs a Menu.
// Ids left at DefaultRootID or DefaultTriggerID give way to the ids the
// document declares.
func FromDocument(doc *dom.Document, rootID, triggerID string, src EventSource, applier TransformApplier, cfg Config) (*Menu, error) {
	if doc == nil {
		return nil, errors.Mark(errors.New("menu document is nil"), dom.ErrMissingElement)
	}
	rootID = declaredID(rootID, DefaultRootID, doc.RootID)
	triggerID = declaredID(triggerID, DefaultTriggerID, doc.TriggerID)
	root, err := doc.Require(rootID, "menu root")
	if err != nil {
		return nil, err
	}
	trigger, err := doc.Require(triggerID, "trigger")
	if err != nil {
		return nil, err
	}
	return New(root, trigger, src, applier, cfg)
}

func declaredID(id, fallback, declared string) string {
	if declared != "" && (id == "" || id == fallback) {
		return declared
	}
	return id
}

// Tree exposes the indexed hierarchy and its current state.
func (m *Menu) Tree() *Tree { return m.tree }

// Machine exposes the state machine for hosts that drive it directly.
func (m *Menu) Machine() *Machine { return m.machine }

// Router exposes the signal entry points.
func (m *Menu) Router() *Router { return m.router }
