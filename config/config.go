package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for brush behavior, overlay appearance
// and session policy. Fields may be loaded from a JSON file; cosmetic
// constants (colors, opacities) live here rather than being hardcoded.
type Config struct {
	Debug bool `json:"debug"`

	// Brush parameters
	BrushSize int `json:"brush_size"`
	BrushMin  int `json:"brush_min"`
	BrushMax  int `json:"brush_max"`

	// Overlay appearance. Colors are RGB triples.
	OverlayColor [3]uint8 `json:"overlay_color"`
	OutlineColor [3]uint8 `json:"outline_color"`
	DisplayAlpha float64  `json:"display_alpha"`
	ExportAlpha  float64  `json:"export_alpha"`
	BlurRadius   float64  `json:"blur_radius"`
	JPEGQuality  int      `json:"jpeg_quality"`

	// Session policy: when true, skipped frames are recorded in a ledger
	// and not re-offered in later sessions.
	RememberSkips bool `json:"remember_skips"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		BrushSize:     3,
		BrushMin:      1,
		BrushMax:      20,
		OverlayColor:  [3]uint8{135, 206, 250},
		OutlineColor:  [3]uint8{220, 38, 38},
		DisplayAlpha:  0.45,
		ExportAlpha:   0.5,
		BlurRadius:    7,
		JPEGQuality:   90,
		RememberSkips: false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.BrushMin < 1 {
		c.BrushMin = 1
	}
	if c.BrushMax < c.BrushMin {
		c.BrushMax = c.BrushMin + 19
	}
	if c.BrushSize < c.BrushMin {
		c.BrushSize = c.BrushMin
	}
	if c.BrushSize > c.BrushMax {
		c.BrushSize = c.BrushMax
	}
	if c.DisplayAlpha <= 0 || c.DisplayAlpha > 1 {
		c.DisplayAlpha = 0.45
	}
	if c.ExportAlpha <= 0 || c.ExportAlpha > 1 {
		c.ExportAlpha = 0.5
	}
	if c.BlurRadius < 0 {
		c.BlurRadius = 7
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 90
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
