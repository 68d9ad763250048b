package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config represents the application configuration.
type Config struct {
	Display DisplayConfig `json:"display"`
	HUB12   HUB12Config   `json:"hub12"`
	Feed    FeedConfig    `json:"feed"`
}

// DisplayConfig describes the panel layout and render timing.
type DisplayConfig struct {
	PanelsAcross      int    `json:"panels_across"`
	PanelsDown        int    `json:"panels_down"`
	FontPath          string `json:"font_path"` // empty selects the builtin font
	RefreshIntervalUS int    `json:"refresh_interval_us"`
	ScrollIntervalMS  int    `json:"scroll_interval_ms"`
}

// HUB12Config holds the GPIO wiring of the panel chain.
type HUB12Config struct {
	Chip     string `json:"chip"`
	APin     int    `json:"a_pin"`
	BPin     int    `json:"b_pin"`
	ClockPin int    `json:"clock_pin"`
	LatchPin int    `json:"latch_pin"`
	OEPin    int    `json:"oe_pin"`
	DataPin  int    `json:"data_pin"`
}

// FeedConfig points at an optional WebSocket message source.
type FeedConfig struct {
	URL string `json:"url"`
}

// Load loads the configuration from a JSON file, filling unset fields from
// the defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := Default()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %v", path, err)
	}
	if cfg.Display.PanelsAcross <= 0 || cfg.Display.PanelsDown <= 0 {
		return nil, fmt.Errorf("invalid panel grid: %dx%d", cfg.Display.PanelsAcross, cfg.Display.PanelsDown)
	}
	return cfg, nil
}

// Default returns the default configuration: a single 32x16 panel on the
// classic DMD connector wiring.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			PanelsAcross:      1,
			PanelsDown:        1,
			RefreshIntervalUS: 1000,
			ScrollIntervalMS:  40,
		},
		HUB12: HUB12Config{
			Chip:     "gpiochip0",
			APin:     19,
			BPin:     21,
			ClockPin: 18,
			LatchPin: 22,
			OEPin:    2,
			DataPin:  23,
		},
	}
}
