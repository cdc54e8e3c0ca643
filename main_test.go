package main

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/pushmenu/internal/app"
	"github.com/atomicstack/pushmenu/internal/config"
	"github.com/atomicstack/pushmenu/internal/pushmenu"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestMenuDetails(t *testing.T) {
	info := menuDetails(filepath.Join("testdata", "menu.yaml"))
	if info.Format != "yaml" {
		t.Fatalf("expected yaml format, got %q", info.Format)
	}
	if info.Size == 0 || info.Error != "" {
		t.Fatalf("expected file size without error, got %d %q", info.Size, info.Error)
	}
	if !filepath.IsAbs(info.Path) {
		t.Fatalf("expected absolute path, got %q", info.Path)
	}

	missing := menuDetails("missing.HTML")
	if missing.Format != "html" || missing.Error == "" {
		t.Fatalf("expected html format with error, got %#v", missing)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuPath:   "testdata/menu.html",
			RootID:     "mp-menu",
			TriggerID:  "trigger",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Menu:       pushmenu.DefaultConfig(),
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"menu":         "testdata/menu.html",
			"width":        "80",
			"height":       "24",
			"footer":       "true",
			"levelSpacing": "40",
		},
		Args: []string{"-menu", "testdata/menu.html"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["menu"] != "testdata/menu.html" {
		t.Fatalf("expected menu flag, got %v", flagsValue["menu"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["levelSpacing"] != "40" {
		t.Fatalf("expected level spacing 40, got %v", flagsValue["levelSpacing"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if menu, ok := payload["menu"].(menuInfo); !ok || menu.Format != "html" {
		t.Fatalf("expected menu details in payload, got %#v", payload["menu"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
