// Package config provides configuration loading and access for the editor.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all editor configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Data      DataConfig      `yaml:"data"`
	Editor    EditorConfig    `yaml:"editor"`
	Export    ExportConfig    `yaml:"export"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	TargetFPS       int     `yaml:"target_fps"`
	MonitorFraction float64 `yaml:"monitor_fraction"` // Window height as a fraction of the monitor (0 = use width/height)
	Resizable       bool    `yaml:"resizable"`
}

// WorldConfig holds the fixed world extents and grid pitch.
type WorldConfig struct {
	Width   int     `yaml:"width"`   // World width in world units
	Height  int     `yaml:"height"`  // World height in world units
	Spacing float64 `yaml:"spacing"` // Distance between grid points
}

// DataConfig holds persisted file locations.
type DataConfig struct {
	Walls string `yaml:"walls"`
}

// EditorConfig holds interaction parameters.
type EditorConfig struct {
	Nudge float64 `yaml:"nudge"` // Arrow-key offset applied to clicks, in world units
}

// ExportConfig holds SVG snapshot settings.
type ExportConfig struct {
	SVGPath string  `yaml:"svg_path"`
	Scale   float64 `yaml:"scale"`
}

// TelemetryConfig holds frame timing parameters.
type TelemetryConfig struct {
	FrameWindow int     `yaml:"frame_window"` // Frames averaged per stats window
	LogInterval float64 `yaml:"log_interval"` // Seconds between frame stat log lines (0 = off)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Rows     int     // floor(World.Height/Spacing)+1
	Cols     int     // floor(World.Width/Spacing)+1
	WorldW64 float64 // World.Width as float64
	WorldH64 float64 // World.Height as float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the world geometry. The grid needs positive extents and a
// pitch no larger than either extent.
func (c *Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 {
		errs = append(errs, fmt.Errorf("world.width must be positive, got %d", c.World.Width))
	}
	if c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world.height must be positive, got %d", c.World.Height))
	}
	if c.World.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("world.spacing must be positive, got %g", c.World.Spacing))
	} else if c.World.Spacing > float64(c.World.Width) || c.World.Spacing > float64(c.World.Height) {
		errs = append(errs, fmt.Errorf("world.spacing %g exceeds world extents %dx%d",
			c.World.Spacing, c.World.Width, c.World.Height))
	}
	if c.Data.Walls == "" {
		errs = append(errs, errors.New("data.walls must name a file"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WorldW64 = float64(c.World.Width)
	c.Derived.WorldH64 = float64(c.World.Height)
	c.Derived.Rows = GridCount(c.World.Height, c.World.Spacing)
	c.Derived.Cols = GridCount(c.World.Width, c.World.Spacing)

	if c.Export.Scale <= 0 {
		c.Export.Scale = 4
	}
	if c.Telemetry.FrameWindow < 1 {
		c.Telemetry.FrameWindow = 60
	}
}

// GridCount returns the number of grid points along an extent: floor(extent/spacing)+1.
func GridCount(extent int, spacing float64) int {
	return int(float64(extent)/spacing) + 1
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
