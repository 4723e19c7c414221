package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/gravitywell/ecs/system"
)

type Config struct {
	Window    WindowConfig    `toml:"window"`
	Logging   LoggingConfig   `toml:"logging"`
	Physics   PhysicsConfig   `toml:"physics"`
	Arena     ArenaConfig     `toml:"arena"`
	Controls  ControlsConfig  `toml:"controls"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Debug     DebugConfig     `toml:"debug"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type PhysicsConfig struct {
	NominalFrameMS     float64 `toml:"nominal_frame_ms"`
	AttractionStrength float64 `toml:"attraction_strength"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type ControlsConfig struct {
	RotateDegrees float64 `toml:"rotate_degrees"` // per tick
	Thrust        float64 `toml:"thrust"`         // added along the nose per tick
	MaxSpeed      float64 `toml:"max_speed"`
}

type TelemetryConfig struct {
	OutputDir string `toml:"output_dir"` // empty disables session stats
}

type DebugConfig struct {
	HotReload bool `toml:"hot_reload"`
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	tuning := system.DefaultTuning()
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Gravity Well",
			TPS:    60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Physics: PhysicsConfig{
			NominalFrameMS:     tuning.NominalFrameMS,
			AttractionStrength: tuning.AttractionStrength,
		},
		Arena: ArenaConfig{
			Width:  tuning.ArenaWidth,
			Height: tuning.ArenaHeight,
		},
		Controls: ControlsConfig{
			RotateDegrees: tuning.RotateDegrees,
			Thrust:        tuning.Thrust,
			MaxSpeed:      tuning.MaxSpeed,
		},
	}
}

func (c *Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	case c.Physics.NominalFrameMS <= 0:
		return fmt.Errorf("physics nominal_frame_ms must be positive, got %v", c.Physics.NominalFrameMS)
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	}
	return nil
}

// Tuning converts the simulation sections for the systems.
func (c *Config) Tuning() system.Tuning {
	return system.Tuning{
		NominalFrameMS:     c.Physics.NominalFrameMS,
		AttractionStrength: c.Physics.AttractionStrength,
		ArenaWidth:         c.Arena.Width,
		ArenaHeight:        c.Arena.Height,
		RotateDegrees:      c.Controls.RotateDegrees,
		Thrust:             c.Controls.Thrust,
		MaxSpeed:           c.Controls.MaxSpeed,
	}
}
