package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/pushmenu/internal/app"
	"github.com/atomicstack/pushmenu/internal/pushmenu"
	"go.uber.org/multierr"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuPath     = "PUSHMENU_FILE"
	envRootID       = "PUSHMENU_ROOT"
	envTriggerID    = "PUSHMENU_TRIGGER"
	envLevelSpacing = "PUSHMENU_LEVEL_SPACING"
	envBackClass    = "PUSHMENU_BACK_CLASS"
	envLevelClass   = "PUSHMENU_LEVEL_CLASS"
	envWidth        = "PUSHMENU_WIDTH"
	envHeight       = "PUSHMENU_HEIGHT"
	envShowFooter   = "PUSHMENU_FOOTER"
	envWatch        = "PUSHMENU_WATCH"
	envTrace        = "PUSHMENU_TRACE"
	envLogFile      = "PUSHMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	defaults := pushmenu.DefaultConfig()

	fs := flag.NewFlagSet("pushmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuPath := fs.String("menu", envOrDefault(env, envMenuPath, ""), "path to the menu description (.html or .yaml)")
	rootID := fs.String("root", envOrDefault(env, envRootID, pushmenu.DefaultRootID), "id of the menu root container")
	triggerID := fs.String("trigger", envOrDefault(env, envTriggerID, pushmenu.DefaultTriggerID), "id of the element toggling the menu")
	spacing := fs.Float64("level-spacing", envOrFloat(env, envLevelSpacing, defaults.LevelSpacing), "distance between stacked levels")
	backClass := fs.String("back-class", envOrDefault(env, envBackClass, defaults.BackMarker), "class marking back-link elements")
	levelClass := fs.String("level-class", envOrDefault(env, envLevelClass, defaults.LevelMarker), "class marking level containers")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the menu when its file changes")
	dump := fs.Bool("dump", false, "print the indexed levels and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *menuPath == "" && fs.NArg() > 0 {
		*menuPath = fs.Arg(0)
	}

	cfg := Config{
		App: app.Config{
			MenuPath:   *menuPath,
			RootID:     *rootID,
			TriggerID:  *triggerID,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Watch:      *watch,
			Dump:       *dump,
			Menu: pushmenu.Config{
				LevelSpacing: *spacing,
				BackMarker:   *backClass,
				LevelMarker:  *levelClass,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"menu":         *menuPath,
			"root":         *rootID,
			"trigger":      *triggerID,
			"levelSpacing": strconv.FormatFloat(*spacing, 'f', -1, 64),
			"backClass":    *backClass,
			"levelClass":   *levelClass,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"watch":        strconv.FormatBool(*watch),
			"dump":         strconv.FormatBool(*dump),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate reports every missing or out-of-range setting at once.
func Validate(cfg Config) error {
	var errs error
	if strings.TrimSpace(cfg.App.MenuPath) == "" {
		errs = multierr.Append(errs, fmt.Errorf("a menu file is required (-menu or %s)", envMenuPath))
	}
	if cfg.App.Width < 0 {
		errs = multierr.Append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = multierr.Append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if strings.TrimSpace(cfg.App.RootID) == "" {
		errs = multierr.Append(errs, fmt.Errorf("root id must not be empty"))
	}
	if strings.TrimSpace(cfg.App.TriggerID) == "" {
		errs = multierr.Append(errs, fmt.Errorf("trigger id must not be empty"))
	}
	return multierr.Append(errs, cfg.App.Menu.Validate())
}
