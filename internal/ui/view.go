package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/logging/events"
	"github.com/atomicstack/pushmenu/internal/pushmenu"
	uistate "github.com/atomicstack/pushmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	// unitsPerCell converts offset distance units to terminal columns.
	unitsPerCell     = 10
	defaultViewWidth = 60

	headerSeparator = " → "
	triggerGlyph    = "≡ "
	backGlyph       = "« "
	openerGlyph     = " ›"
	itemIndicator   = "▌"
)

type rowKind int

const (
	rowTitle rowKind = iota
	rowBack
	rowItem
	rowEmpty
)

type panelRow struct {
	kind   rowKind
	text   string
	target *dom.Element
	item   *pushmenu.Item
	index  int
}

// column is the horizontal span a level occupies on screen. Covered levels
// get a strip; the front level takes the rest of the width.
type column struct {
	level *pushmenu.Level
	panel *uistate.Panel
	x     int
	width int
	front bool
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{m.renderHeader()}
	lines = append(lines, m.renderBody()...)
	lines = append(lines, m.renderStatus(), m.filterPrompt())
	if m.showFooter {
		lines = append(lines, m.renderFooter())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultViewWidth
}

// bodyHeight is the number of rows between the header and the status line,
// or -1 when the terminal height is unknown.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header, status, prompt
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func headerRows(l *pushmenu.Level) int {
	if l != nil && l.Back != nil {
		return 2
	}
	return 1
}

func (m *Model) maxItemsFor(l *pushmenu.Level) int {
	h := m.bodyHeight()
	if h < 0 {
		return -1
	}
	remain := h - headerRows(l)
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) maxVisibleItems() int {
	return m.maxItemsFor(m.menu.Tree().Front())
}

// columns lays the open chain out horizontally. The root's offset says how
// far the front panel is pushed; that distance is shared out between the
// covered levels as strips.
func (m *Model) columns() []column {
	tree := m.menu.Tree()
	chain := tree.Chain()
	if len(chain) == 0 {
		return nil
	}
	width := m.viewWidth()
	push := m.offsets.Get(tree.Root).Cells(width, unitsPerCell)
	if push < 0 {
		push = 0
	}
	if push > width-1 {
		push = width - 1
	}
	covered := len(chain) - 1
	cols := make([]column, 0, len(chain))
	for i, l := range chain[:covered] {
		x0 := push * i / covered
		x1 := push * (i + 1) / covered
		if x1 <= x0 {
			continue
		}
		cols = append(cols, column{level: l, panel: m.panels[l], x: x0, width: x1 - x0})
	}
	front := chain[covered]
	return append(cols, column{level: front, panel: m.panels[front], x: push, width: width - push, front: true})
}

func (m *Model) panelRows(c column) []panelRow {
	l := c.level
	title := l.Title
	if title == "" {
		title = l.Name
	}
	rows := []panelRow{{kind: rowTitle, text: title, target: l.Element}}
	if l.Back != nil {
		label := l.Back.Element.Label()
		if label == "" {
			label = "back"
		}
		rows = append(rows, panelRow{kind: rowBack, text: backGlyph + label, target: l.Back.Element})
	}
	p := c.panel
	if p == nil {
		return rows
	}
	if len(p.Items) == 0 {
		msg := "(no entries)"
		if p.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", p.Filter)
		}
		return append(rows, panelRow{kind: rowEmpty, text: msg, target: l.Element})
	}
	start := p.ViewportOffset
	if start < 0 || start >= len(p.Items) {
		start = 0
	}
	end := len(p.Items)
	if n := m.maxItemsFor(l); n > 0 && start+n < end {
		end = start + n
	}
	for i := start; i < end; i++ {
		item := p.Items[i]
		rows = append(rows, panelRow{kind: rowItem, text: item.Label, target: activatorOf(item), item: item, index: i})
	}
	return rows
}

// layoutRows returns each column's rows and the number of body rows drawn.
func (m *Model) layoutRows(cols []column) ([][]panelRow, int) {
	rows := make([][]panelRow, len(cols))
	n := 0
	for i, c := range cols {
		rows[i] = m.panelRows(c)
		if len(rows[i]) > n {
			n = len(rows[i])
		}
	}
	if h := m.bodyHeight(); h >= 0 {
		n = h
	}
	return rows, n
}

func (m *Model) triggerText() string {
	label := m.menu.Trigger.Label()
	if label == "" {
		label = "Menu"
	}
	return clip(triggerGlyph+label, m.viewWidth())
}

func (m *Model) renderHeader() string {
	tree := m.menu.Tree()
	trigger := m.triggerText()
	style := styles.Trigger
	if tree.Open() {
		style = styles.TriggerOpen
	}
	out := renderStyled(style, trigger)
	remaining := m.viewWidth() - ansi.StringWidth(trigger)
	chain := tree.Chain()
	if len(chain) == 0 || remaining <= 2 {
		return out
	}
	titles := make([]string, len(chain))
	for i, l := range chain {
		titles[i] = l.Title
	}
	crumb := clip("  "+strings.Join(titles, headerSeparator), remaining)
	return out + renderStyled(styles.Breadcrumb, crumb)
}

func (m *Model) renderBody() []string {
	cols := m.columns()
	if len(cols) == 0 {
		return m.renderPage()
	}
	rows, n := m.layoutRows(cols)
	out := make([]string, n)
	for y := 0; y < n; y++ {
		var b strings.Builder
		for i, c := range cols {
			var row *panelRow
			if y < len(rows[i]) {
				row = &rows[i][y]
			}
			b.WriteString(m.renderCell(c, row))
		}
		out[y] = b.String()
	}
	return out
}

func (m *Model) renderCell(c column, row *panelRow) string {
	if !c.front {
		style := styles.Strip
		if c.level.IsOverlaid() {
			style = styles.StripOverlaid
		}
		text := ""
		if row != nil {
			text = row.text
		}
		return renderStyled(style, fit(text, c.width))
	}
	if row == nil {
		return fit("", c.width)
	}
	switch row.kind {
	case rowTitle:
		return renderStyled(styles.Title, fit(row.text, c.width))
	case rowBack:
		return renderStyled(styles.Back, fit(row.text, c.width))
	case rowEmpty:
		return renderStyled(styles.Info, fit(row.text, c.width))
	}
	label := row.text
	lineStyle := styles.Item
	if row.item.IsOpener() {
		label += openerGlyph
		lineStyle = styles.Opener
	}
	indicatorStyle := styles.ItemIndicator
	if c.panel != nil && row.index == c.panel.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	if c.width < 2 {
		return renderStyled(indicatorStyle, fit(itemIndicator, c.width))
	}
	return renderStyled(indicatorStyle, itemIndicator) + renderStyled(lineStyle, fit(" "+label, c.width-1))
}

// renderPage draws the host page shown while the menu is closed.
func (m *Model) renderPage() []string {
	width := m.viewWidth()
	var text []string
	if m.page != nil {
		if label := m.page.Label(); label != "" {
			text = append(text, label)
		}
		for _, el := range m.page.Query(func(*dom.Element) bool { return true }) {
			if label := el.Label(); label != "" {
				text = append(text, label)
			}
		}
	}
	text = append(text, "", "Press ctrl+o to open the menu.")
	n := len(text)
	if h := m.bodyHeight(); h >= 0 {
		n = h
	}
	out := make([]string, n)
	for i := range out {
		line := ""
		if i < len(text) {
			line = text[i]
		}
		out[i] = renderStyled(styles.Page, clip(line, width))
	}
	return out
}

func (m *Model) renderStatus() string {
	width := m.viewWidth()
	if m.errMsg != "" {
		return renderStyled(styles.Error, clip("Error: "+m.errMsg, width))
	}
	if info := m.currentInfo(); info != "" {
		return renderStyled(styles.Info, clip(info, width))
	}
	return ""
}

func (m *Model) renderFooter() string {
	m.help.Width = m.viewWidth()
	return renderStyled(styles.Footer, m.help.View(m.keys))
}

// hit describes what lies under a screen position.
type hit struct {
	region string
	target *dom.Element
	item   *pushmenu.Item
	index  int
	front  bool
}

// hitTest maps a screen position to the element a click there activates.
// Anything that is neither the trigger nor a visible panel is the page.
func (m *Model) hitTest(x, y int) hit {
	page := hit{region: "page", target: m.page}
	if y == 0 {
		if x >= 0 && x < ansi.StringWidth(m.triggerText()) {
			return hit{region: "trigger", target: m.menu.Trigger}
		}
		return page
	}
	cols := m.columns()
	if len(cols) == 0 {
		return page
	}
	rows, n := m.layoutRows(cols)
	row := y - 1
	if row >= n {
		return page
	}
	for i, c := range cols {
		if x < c.x || x >= c.x+c.width {
			continue
		}
		if row < len(rows[i]) {
			r := rows[i][row]
			return hit{region: "panel", target: r.target, item: r.item, index: r.index, front: c.front}
		}
		return hit{region: "panel", target: c.level.Element, front: c.front}
	}
	return page
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor((*uistate.Panel).MoveCursorUp)
		return nil
	case tea.MouseButtonWheelDown:
		m.moveCursor((*uistate.Panel).MoveCursorDown)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	h := m.hitTest(ev.X, ev.Y)
	events.UI.Mouse(ev.X, ev.Y, h.region)
	if h.front && h.item != nil {
		if p := m.frontPanel(); p != nil {
			p.Cursor = h.index
			m.syncViewport(p)
		}
		if !h.item.IsOpener() {
			m.selectItem(h.item)
			return nil
		}
	}
	m.activate(h.target)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.viewWidth()
	m.syncViewport(m.frontPanel())
	return nil
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// clip truncates text to width cells, marking the cut with an ellipsis.
func clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

// fit clips text to width cells and pads it to exactly width.
func fit(text string, width int) string {
	text = clip(text, width)
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
