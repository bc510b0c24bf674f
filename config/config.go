// Package config provides configuration loading and access for turtlesoup.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Turtle    TurtleConfig    `yaml:"turtle"`
	Program   ProgramConfig   `yaml:"program"`
	Animation AnimationConfig `yaml:"animation"`
	Gallery   GalleryConfig   `yaml:"gallery"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Output    OutputConfig    `yaml:"output"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	TargetFPS   int    `yaml:"target_fps"`
	Title       string `yaml:"title"`
	GridSpacing int    `yaml:"grid_spacing"` // World units between grid lines (0 = no grid)
}

// TurtleConfig holds pen and marker appearance.
type TurtleConfig struct {
	LineThickness float64 `yaml:"line_thickness"` // Trail thickness in pixels
	MarkerSize    float64 `yaml:"marker_size"`    // Turtle triangle size in pixels
	HueStart      float64 `yaml:"hue_start"`      // Trail colour hue of the first segment (degrees)
	HueSpan       float64 `yaml:"hue_span"`       // Hue change across the whole trail (degrees)
}

// ProgramConfig selects and parameterises the drawing program.
type ProgramConfig struct {
	Name       string  `yaml:"name"`        // square, polygon, art or path
	SideLength float64 `yaml:"side_length"` // square and polygon side length
	Sides      int     `yaml:"sides"`       // polygon side count (> 2)
	Unit       float64 `yaml:"unit"`        // forward distance per grid unit for waypoint paths
	Waypoints  string  `yaml:"waypoints"`   // CSV file for the path program
}

// AnimationConfig holds playback parameters.
type AnimationConfig struct {
	CommandsPerSecond float64 `yaml:"commands_per_second"` // 0 = draw everything at once
	StartPaused       bool    `yaml:"start_paused"`
}

// GalleryConfig lists the programs shown side by side in gallery mode.
type GalleryConfig struct {
	Programs []string `yaml:"programs"`
	Spacing  float64  `yaml:"spacing"` // World units between drawing origins
}

// TerminalConfig holds terminal viewer parameters.
type TerminalConfig struct {
	CellAspect float64 `yaml:"cell_aspect"` // Character cell height / width
	Glyph      string  `yaml:"glyph"`       // Rune marking the turtle
}

// OutputConfig holds run output parameters.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Directory for commands.csv and config.yaml (empty = disabled)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32  float32 // Screen.Width as float32
	ScreenH32  float32 // Screen.Height as float32
	StepPeriod float64 // Seconds per command (0 = unthrottled)
	GlyphRune  rune    // First rune of Terminal.Glyph
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

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
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
		// Unmarshal into same struct - only overwrites fields present in file
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

// Validate checks values the drawing code relies on.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Program.SideLength < 0 {
		return fmt.Errorf("program.side_length must not be negative, got %v", c.Program.SideLength)
	}
	if c.Program.Unit <= 0 {
		return fmt.Errorf("program.unit must be positive, got %v", c.Program.Unit)
	}
	if c.Animation.CommandsPerSecond < 0 {
		return fmt.Errorf("animation.commands_per_second must not be negative, got %v", c.Animation.CommandsPerSecond)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	c.Derived.StepPeriod = 0
	if c.Animation.CommandsPerSecond > 0 {
		c.Derived.StepPeriod = 1 / c.Animation.CommandsPerSecond
	}

	c.Derived.GlyphRune = '*'
	for _, r := range c.Terminal.Glyph {
		c.Derived.GlyphRune = r
		break
	}

	if c.Terminal.CellAspect <= 0 {
		c.Terminal.CellAspect = 2
	}
	if c.Gallery.Spacing <= 0 {
		c.Gallery.Spacing = 300
	}
}

// WriteYAML saves the configuration to a file.
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
