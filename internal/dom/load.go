package dom

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMissingElement marks errors caused by a required element being absent
// from the hierarchy.
var ErrMissingElement = errors.New("missing element")

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported menu format")

// Load reads a menu description from disk. HTML files are parsed as markup;
// YAML files are parsed as outlines and lowered using markers.
func Load(path string, markers Markers) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open menu %s", path)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		doc, err := ParseHTML(f)
		return doc, errors.Wrapf(err, "load %s", path)
	case ".yaml", ".yml":
		doc, err := ParseOutline(f, markers)
		return doc, errors.Wrapf(err, "load %s", path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s (extension %q)", path, ext)
	}
}

// Require looks up an element by id and reports a marked error when absent.
func (d *Document) Require(id, role string) (*Element, error) {
	el := d.ByID(id)
	if el == nil {
		return nil, errors.Mark(errors.Newf("%s element #%s not found", role, id), ErrMissingElement)
	}
	return el, nil
}
