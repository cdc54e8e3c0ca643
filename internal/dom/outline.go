package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Markers names the classes used when lowering an outline into elements.
type Markers struct {
	Level string
	Back  string
}

// DefaultMarkers matches the class names used by the HTML push menu markup.
func DefaultMarkers() Markers {
	return Markers{Level: "mp-level", Back: "mp-back"}
}

// Outline is the YAML description of a menu.
type Outline struct {
	Root    string        `yaml:"root"`
	Trigger string        `yaml:"trigger"`
	Title   string        `yaml:"title"`
	Page    string        `yaml:"page"`
	Items   []OutlineItem `yaml:"items"`
}

// OutlineItem is one entry; an item with Items opens a sub-level.
type OutlineItem struct {
	ID    string        `yaml:"id"`
	Label string        `yaml:"label"`
	Title string        `yaml:"title"`
	Back  *string       `yaml:"back"`
	Items []OutlineItem `yaml:"items"`
}

const (
	defaultRootID    = "mp-menu"
	defaultTriggerID = "trigger"
	defaultBackLabel = "back"
)

// ParseOutline decodes a YAML outline and lowers it into a Document shaped
// like the HTML markup: a trigger link, a page element and a nav root whose
// levels are div containers carrying the level marker.
func ParseOutline(r io.Reader, markers Markers) (*Document, error) {
	var outline Outline
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&outline); err != nil {
		return nil, errors.Wrap(err, "decode outline")
	}
	if err := outline.validate(); err != nil {
		return nil, err
	}
	return outline.Lower(markers), nil
}

func (o *Outline) validate() error {
	var errs error
	if len(o.Items) == 0 {
		errs = multierr.Append(errs, errors.New("outline has no items"))
	}
	var check func(path string, items []OutlineItem)
	check = func(path string, items []OutlineItem) {
		for i, item := range items {
			p := fmt.Sprintf("%s[%d]", path, i)
			if strings.TrimSpace(item.Label) == "" {
				errs = multierr.Append(errs, errors.Newf("%s: missing label", p))
			}
			check(p+".items", item.Items)
		}
	}
	check("items", o.Items)
	if errs != nil {
		return errors.Wrap(errs, "invalid outline")
	}
	return nil
}

// Lower converts the outline into a Document.
func (o *Outline) Lower(markers Markers) *Document {
	rootID := firstNonEmpty(o.Root, defaultRootID)
	triggerID := firstNonEmpty(o.Trigger, defaultTriggerID)

	trigger := NewElement("a", triggerID, "menu-trigger")
	trigger.Text = "Open Menu"
	page := NewElement("main", "page")
	page.Text = firstNonEmpty(o.Page, "")

	nav := NewElement("nav", rootID, "mp-menu")
	nav.Append(lowerLevel(firstNonEmpty(o.Title, "Menu"), nil, o.Items, markers))

	body := NewElement("body", "")
	body.Append(trigger, nav, page)
	return &Document{
		Body:      body,
		RootID:    strings.TrimSpace(o.Root),
		TriggerID: strings.TrimSpace(o.Trigger),
	}
}

func lowerLevel(title string, back *string, items []OutlineItem, markers Markers) *Element {
	level := NewElement("div", "", markers.Level)
	heading := NewElement("h2", "")
	heading.Text = title
	level.Append(heading)
	if back != nil {
		link := NewElement("a", "", markers.Back)
		link.Text = firstNonEmpty(*back, defaultBackLabel)
		level.Append(link)
	}
	list := NewElement("ul", "")
	for _, item := range items {
		list.Append(lowerItem(item, markers))
	}
	return level.Append(list)
}

func lowerItem(item OutlineItem, markers Markers) *Element {
	li := NewElement("li", item.ID)
	anchor := NewElement("a", "")
	anchor.Text = item.Label
	li.Append(anchor)
	if len(item.Items) > 0 {
		back := item.Back
		if back == nil {
			label := defaultBackLabel
			back = &label
		}
		li.Append(lowerLevel(firstNonEmpty(item.Title, item.Label), back, item.Items, markers))
	}
	return li
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
