package dom

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

// ParseHTML builds a Document from HTML markup. Only the body subtree is
// kept; comments, scripts and styles are dropped.
func ParseHTML(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, errors.Mark(errors.New("html document has no body"), ErrMissingElement)
	}
	return &Document{Body: convertSelection(body)}, nil
}

func convertSelection(sel *goquery.Selection) *Element {
	node := sel.Get(0)
	el := &Element{
		ID:      sel.AttrOr("id", ""),
		Tag:     strings.ToLower(goquery.NodeName(sel)),
		Classes: strings.Fields(sel.AttrOr("class", "")),
		Attrs:   make(map[string]string, len(node.Attr)),
	}
	for _, attr := range node.Attr {
		el.Attrs[attr.Key] = attr.Val
	}
	var text strings.Builder
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		if goquery.NodeName(child) == "#text" {
			text.WriteString(child.Text())
		}
	})
	el.Text = collapseSpace(text.String())
	sel.Children().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "script", "style", "template":
			return
		}
		el.Append(convertSelection(child))
	})
	return el
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
