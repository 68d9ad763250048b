package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault tests the builtin single-panel defaults
func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Display.PanelsAcross != 1 || cfg.Display.PanelsDown != 1 {
		t.Errorf("default grid = %dx%d, want 1x1", cfg.Display.PanelsAcross, cfg.Display.PanelsDown)
	}
	if cfg.Display.RefreshIntervalUS != 1000 {
		t.Errorf("RefreshIntervalUS = %d, want 1000", cfg.Display.RefreshIntervalUS)
	}
	if cfg.Display.ScrollIntervalMS != 40 {
		t.Errorf("ScrollIntervalMS = %d, want 40", cfg.Display.ScrollIntervalMS)
	}
	if cfg.HUB12.Chip != "gpiochip0" {
		t.Errorf("Chip = %q, want gpiochip0", cfg.HUB12.Chip)
	}
	if cfg.Feed.URL != "" {
		t.Errorf("Feed.URL = %q, want empty", cfg.Feed.URL)
	}
}

// TestLoad tests loading a config file over the defaults
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"display": {"panels_across": 4, "panels_down": 1, "font_path": "arabic11.font"},
		"hub12": {"chip": "gpiochip4", "data_pin": 10},
		"feed": {"url": "ws://example.local/messages"}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.PanelsAcross != 4 {
		t.Errorf("PanelsAcross = %d, want 4", cfg.Display.PanelsAcross)
	}
	if cfg.Display.FontPath != "arabic11.font" {
		t.Errorf("FontPath = %q, want arabic11.font", cfg.Display.FontPath)
	}
	// Fields the file omits keep their defaults.
	if cfg.Display.ScrollIntervalMS != 40 {
		t.Errorf("ScrollIntervalMS = %d, want default 40", cfg.Display.ScrollIntervalMS)
	}
	if cfg.HUB12.Chip != "gpiochip4" || cfg.HUB12.DataPin != 10 {
		t.Errorf("HUB12 = %+v, want overridden chip and data pin", cfg.HUB12)
	}
	if cfg.Feed.URL != "ws://example.local/messages" {
		t.Errorf("Feed.URL = %q", cfg.Feed.URL)
	}
}

// TestLoadErrors tests missing files, bad JSON and invalid grids
func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"display": `},
		{name: "zero panels across", data: `{"display": {"panels_across": 0, "panels_down": 1}}`},
		{name: "negative panels down", data: `{"display": {"panels_across": 1, "panels_down": -2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
