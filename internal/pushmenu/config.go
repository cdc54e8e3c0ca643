package pushmenu

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

const (
	// DefaultLevelSpacing is the distance between stacked levels.
	DefaultLevelSpacing = 40
	// DefaultBackMarker marks back-link elements.
	DefaultBackMarker = "mp-back"
	// DefaultLevelMarker marks level containers.
	DefaultLevelMarker = "mp-level"
	// DefaultRootID is the id of the menu root container.
	DefaultRootID = "mp-menu"
	// DefaultTriggerID is the id of the element toggling the menu.
	DefaultTriggerID = "trigger"
)

// Config holds construction-time options.
type Config struct {
	// LevelSpacing is the offset, in distance units, between overlapping levels.
	LevelSpacing float64
	// BackMarker is the class recognising back-link elements.
	BackMarker string
	// LevelMarker is the class recognising level containers.
	LevelMarker string
}

// DefaultConfig returns the widget defaults.
func DefaultConfig() Config {
	return Config{
		LevelSpacing: DefaultLevelSpacing,
		BackMarker:   DefaultBackMarker,
		LevelMarker:  DefaultLevelMarker,
	}
}

// Validate reports every invalid option at once.
func (c Config) Validate() error {
	var errs error
	switch {
	case math.IsNaN(c.LevelSpacing) || math.IsInf(c.LevelSpacing, 0):
		errs = multierr.Append(errs, errors.Newf("level spacing must be a finite number (got %g)", c.LevelSpacing))
	case c.LevelSpacing < 0:
		errs = multierr.Append(errs, errors.Newf("level spacing must be >= 0 (got %g)", c.LevelSpacing))
	}
	if strings.TrimSpace(c.BackMarker) == "" {
		errs = multierr.Append(errs, errors.New("back marker must not be empty"))
	}
	if strings.TrimSpace(c.LevelMarker) == "" {
		errs = multierr.Append(errs, errors.New("level marker must not be empty"))
	}
	if c.BackMarker != "" && c.BackMarker == c.LevelMarker {
		errs = multierr.Append(errs, errors.Newf("back marker and level marker must differ (both %q)", c.BackMarker))
	}
	if errs != nil {
		return errors.Mark(errs, ErrInvalidConfig)
	}
	return nil
}
