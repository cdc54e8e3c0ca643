package pushmenu

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedHierarchy marks a level whose ancestor chain never reaches
	// the menu root.
	ErrMalformedHierarchy = errors.New("malformed menu hierarchy")
	// ErrInvalidConfig marks rejected construction options.
	ErrInvalidConfig = errors.New("invalid menu configuration")
)
