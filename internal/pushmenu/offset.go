package pushmenu

import (
	"strconv"
	"strings"

	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/logging/events"
)

// Offset is a horizontal transform: a percentage of the element's own width
// plus a distance in units. The zero value is translate(0, 0).
type Offset struct {
	Percent float64
	Units   float64

	reset bool
}

// Neutral clears any transform, leaving the element at its natural position.
func Neutral() Offset { return Offset{reset: true} }

// Translate shifts by units.
func Translate(units float64) Offset { return Offset{Units: units} }

// OffScreen pushes an element fully to the left, then a further units.
func OffScreen(units float64) Offset { return Offset{Percent: -100, Units: -units} }

// IsNeutral reports whether the offset leaves the element in place.
func (o Offset) IsNeutral() bool { return o.reset }

// Cells converts the offset to terminal columns for an element width cells
// wide, at unitsPerCell distance units per column.
func (o Offset) Cells(width int, unitsPerCell float64) int {
	if o.reset {
		return 0
	}
	x := o.Percent / 100 * float64(width)
	if unitsPerCell > 0 {
		x += o.Units / unitsPerCell
	}
	if x < 0 {
		return -int(-x + 0.5)
	}
	return int(x + 0.5)
}

// String renders the offset as translate(40, 0), translate(-100%, 0) or
// translate(-100% - 40, 0). The neutral offset renders as none.
func (o Offset) String() string {
	if o.IsNeutral() {
		return "none"
	}
	var b strings.Builder
	b.WriteString("translate(")
	switch {
	case o.Percent == 0:
		b.WriteString(formatUnits(o.Units))
	case o.Units == 0:
		b.WriteString(formatUnits(o.Percent) + "%")
	default:
		b.WriteString(formatUnits(o.Percent) + "%")
		if o.Units < 0 {
			b.WriteString(" - " + formatUnits(-o.Units))
		} else {
			b.WriteString(" + " + formatUnits(o.Units))
		}
	}
	b.WriteString(", 0)")
	return b.String()
}

func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TransformApplier positions elements. Apply must be idempotent.
type TransformApplier interface {
	Apply(el *dom.Element, o Offset)
}

// OffsetTable records the last offset applied to each element. Elements never
// touched read back as neutral.
type OffsetTable struct {
	offsets map[*dom.Element]Offset
}

// NewOffsetTable creates an empty table.
func NewOffsetTable() *OffsetTable {
	return &OffsetTable{offsets: make(map[*dom.Element]Offset)}
}

// Apply implements TransformApplier.
func (t *OffsetTable) Apply(el *dom.Element, o Offset) {
	if el == nil {
		return
	}
	t.offsets[el] = o
}

// Get returns the offset last applied to el.
func (t *OffsetTable) Get(el *dom.Element) Offset {
	if o, ok := t.offsets[el]; ok {
		return o
	}
	return Neutral()
}

// TracingApplier emits a trace event for each applied offset before
// forwarding it.
type TracingApplier struct {
	Next TransformApplier
}

// Apply implements TransformApplier.
func (a TracingApplier) Apply(el *dom.Element, o Offset) {
	events.Menu.Transform(el.String(), o.String())
	if a.Next != nil {
		a.Next.Apply(el, o)
	}
}
