package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/pushmenu/internal/pushmenu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter text, places the caret and narrows the
// panel to the matching items. A non-empty query highlights its best match;
// clearing the query keeps the highlighted item under the cursor.
func (p *Panel) SetFilter(query string, caret int) {
	held := p.Current()
	p.Filter = query
	p.FilterCursor = caret
	p.FilterCursor = p.FilterCursorPos()
	p.applyFilter()
	if q := strings.TrimSpace(query); q != "" {
		if idx := BestMatchIndex(p.Items, q); idx >= 0 {
			p.Cursor = idx
		}
		return
	}
	p.Highlight(held)
}

// ClearFilter drops the filter and reports whether there was one.
func (p *Panel) ClearFilter() bool {
	if p.Filter == "" {
		return false
	}
	p.SetFilter("", 0)
	return true
}

// Highlight moves the cursor onto item when it is visible.
func (p *Panel) Highlight(item *pushmenu.Item) bool {
	if item == nil {
		return false
	}
	idx := p.IndexOf(item)
	if idx < 0 {
		return false
	}
	p.Cursor = idx
	return true
}

func (p *Panel) applyFilter() {
	p.Items = FilterItems(p.Full, p.Filter)
	switch {
	case len(p.Items) == 0:
		p.Cursor = 0
		p.ViewportOffset = 0
	case p.Cursor >= len(p.Items):
		p.Cursor = len(p.Items) - 1
	case p.Cursor < 0:
		p.Cursor = 0
	}
	if p.ViewportOffset >= len(p.Items) {
		p.ViewportOffset = 0
	}
}

// FilterCursorPos returns the caret as a rune offset clamped to the text.
func (p *Panel) FilterCursorPos() int {
	n := len([]rune(p.Filter))
	switch {
	case p.FilterCursor < 0:
		return 0
	case p.FilterCursor > n:
		return n
	}
	return p.FilterCursor
}

// editFilter replaces the runes between from and the caret with text and
// leaves the caret after the inserted text.
func (p *Panel) editFilter(from int, text string) {
	runes := []rune(p.Filter)
	to := p.FilterCursorPos()
	insert := []rune(text)
	out := make([]rune, 0, len(runes)-(to-from)+len(insert))
	out = append(out, runes[:from]...)
	out = append(out, insert...)
	out = append(out, runes[to:]...)
	p.SetFilter(string(out), from+len(insert))
}

// InsertFilterText types text at the caret.
func (p *Panel) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	pos := p.FilterCursorPos()
	p.editFilter(pos, text)
	return true
}

// DeleteFilterRuneBackward removes the rune before the caret.
func (p *Panel) DeleteFilterRuneBackward() bool {
	pos := p.FilterCursorPos()
	if pos == 0 {
		return false
	}
	p.editFilter(pos-1, "")
	return true
}

// DeleteFilterWordBackward removes the word before the caret along with any
// spaces between it and the caret.
func (p *Panel) DeleteFilterWordBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	p.editFilter(i, "")
	return true
}

// FilterItems returns items whose label matches query, fuzzily first and by
// substring as a fallback. Order is preserved.
func FilterItems(items []*pushmenu.Item, query string) []*pushmenu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]*pushmenu.Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]*pushmenu.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex returns the index of the closest label match, preferring
// prefix matches, then substring matches, then the smallest fuzzy distance.
func BestMatchIndex(items []*pushmenu.Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(items) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
