// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	AI        AIConfig        `yaml:"ai"`
	Speeds    SpeedsConfig    `yaml:"speeds"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`       // Playfield width in logical units
	Height     int    `yaml:"height"`      // Playfield height in logical units
	MenuWidth  int    `yaml:"menu_width"`  // Speed menu surface width
	MenuHeight int    `yaml:"menu_height"` // Speed menu surface height
	TargetFPS  int    `yaml:"target_fps"`  // Tick rate during play
	MenuFPS    int    `yaml:"menu_fps"`    // Tick rate while a menu is shown
}

// PaddleConfig holds paddle geometry and movement.
type PaddleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerStep  float64 `yaml:"player_step"`  // Units per frame while a key is held
	PlayerInset float64 `yaml:"player_inset"` // Player paddle x = width - inset
	AIInset     float64 `yaml:"ai_inset"`     // AI paddle x = inset
}

// BallConfig holds ball geometry and collision response.
type BallConfig struct {
	Size      float64 `yaml:"size"`
	MaxDY     float64 `yaml:"max_dy"`     // Cap on |dy| after collision adjustments
	HitFactor float64 `yaml:"hit_factor"` // dy += hit_offset * this on paddle hits
}

// AIConfig holds the AI paddle policy.
type AIConfig struct {
	Step     float64 `yaml:"step"`      // Units per frame
	DeadZone float64 `yaml:"dead_zone"` // No movement while |ball - paddle| <= this
}

// SpeedsConfig maps speed presets to base ball speeds.
type SpeedsConfig struct {
	Slow    int    `yaml:"slow"`
	Medium  int    `yaml:"medium"`
	Fast    int    `yaml:"fast"`
	Default string `yaml:"default"` // Preselected option in the speed menu
}

// ToneConfig describes a synthesized sine cue.
type ToneConfig struct {
	Frequency float64 `yaml:"frequency"` // Hz
	Duration  float64 `yaml:"duration"`  // Seconds
	Volume    float64 `yaml:"volume"`    // Linear gain [0, 1]
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled    bool       `yaml:"enabled"`
	SampleRate int        `yaml:"sample_rate"`
	Bounce     ToneConfig `yaml:"bounce"`
	Score      ToneConfig `yaml:"score"`
}

// TelemetryConfig holds match logging settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // Empty = no CSV output
	LogPoints bool   `yaml:"log_points"` // Log every point via slog
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FieldW32  float32 // Screen.Width as float32
	FieldH32  float32 // Screen.Height as float32
	PaddleW32 float32
	PaddleH32 float32
	BallSize  float32
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the game loop cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("invalid playfield size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Ball.Size <= 0 {
		return fmt.Errorf("paddle and ball sizes must be positive")
	}
	if c.Paddle.Height > float64(c.Screen.Height) {
		return fmt.Errorf("paddle height %.0f exceeds playfield height %d", c.Paddle.Height, c.Screen.Height)
	}
	if c.Speeds.Slow <= 0 || c.Speeds.Medium <= 0 || c.Speeds.Fast <= 0 {
		return fmt.Errorf("speed presets must be positive")
	}
	if c.Screen.TargetFPS <= 0 || c.Screen.MenuFPS <= 0 {
		return fmt.Errorf("frame rates must be positive")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.FieldW32 = float32(c.Screen.Width)
	c.Derived.FieldH32 = float32(c.Screen.Height)
	c.Derived.PaddleW32 = float32(c.Paddle.Width)
	c.Derived.PaddleH32 = float32(c.Paddle.Height)
	c.Derived.BallSize = float32(c.Ball.Size)
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
