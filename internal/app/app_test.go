package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/pushmenu"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func testConfig(name string) Config {
	return Config{
		MenuPath:  filepath.Join("..", "..", "testdata", name),
		RootID:    "mp-menu",
		TriggerID: "trigger",
		Menu:      pushmenu.DefaultConfig(),
	}
}

func TestDumpListsLevels(t *testing.T) {
	for _, name := range []string{"menu.html", "menu.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(name)
			doc, err := Load(cfg)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Dump(&buf, doc, cfg))
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			require.Len(t, lines, 6)
			require.True(t, strings.HasPrefix(lines[0], "LEVEL"))

			fields := strings.Fields(lines[1])
			require.Equal(t, []string{"All", "Categories"}, fields[:2])
			require.Contains(t, lines[1], " 1 ")

			var mobile string
			for _, line := range lines {
				if strings.HasPrefix(line, "Mobile Phones") {
					mobile = line
				}
			}
			require.NotEmpty(t, mobile)
			require.Contains(t, mobile, " 3 ")
			require.Contains(t, mobile, "Devices")
			require.True(t, strings.HasSuffix(strings.TrimSpace(mobile), "back"))
		})
	}
}

func TestDumpReportsIndexErrors(t *testing.T) {
	cfg := testConfig("menu.html")
	doc, err := Load(cfg)
	require.NoError(t, err)
	cfg.TriggerID = "missing"
	err = Dump(&bytes.Buffer{}, doc, cfg)
	require.True(t, errors.Is(err, dom.ErrMissingElement))
}

func TestRunFailsBeforeStartingOnBadFile(t *testing.T) {
	cfg := testConfig("nope.html")
	require.Error(t, Run(cfg))

	cfg = testConfig("menu.html")
	cfg.MenuPath = filepath.Join("..", "..", "go.mod")
	err := Run(cfg)
	require.True(t, errors.Is(err, dom.ErrUnsupportedFormat))
}

func TestConfigMarkers(t *testing.T) {
	cfg := Config{Menu: pushmenu.Config{LevelMarker: "lvl", BackMarker: "up"}}
	require.Equal(t, dom.Markers{Level: "lvl", Back: "up"}, cfg.markers())
}

func TestOutlineDeclaredIDsWinOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "side.yaml")
	src := `
root: nav-main
trigger: open-menu
title: Main
items:
  - label: Home
  - label: Settings
    items:
      - label: Display
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	cfg := testConfig("menu.yaml")
	cfg.MenuPath = path
	doc, err := Load(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, doc, cfg))
	require.Contains(t, buf.String(), "Settings")

	cfg.RootID = "elsewhere"
	err = Dump(&bytes.Buffer{}, doc, cfg)
	require.True(t, errors.Is(err, dom.ErrMissingElement))
	require.Contains(t, err.Error(), "#elsewhere")
}
