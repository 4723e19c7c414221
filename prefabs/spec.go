package prefabs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/gravitywell/ecs/component"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ShipsSpec struct {
	Ships []ShipSpec `yaml:"ships"`
}

type ShipSpec struct {
	Name      string        `yaml:"name"`
	ID        int           `yaml:"id"`
	Transform TransformSpec `yaml:"transform"`
	Velocity  VectorSpec    `yaml:"velocity"`
	Box       BoxSpec       `yaml:"box"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Trail     ColorPairSpec `yaml:"trail"`
}

type GravityWellSpec struct {
	Name        string        `yaml:"name"`
	MaxVelocity float64       `yaml:"max_velocity"`
	Transform   TransformSpec `yaml:"transform"`
	Box         BoxSpec       `yaml:"box"`
	Sprite      SpriteSpec    `yaml:"sprite"`
}

type SalvageSpec struct {
	Name            string     `yaml:"name"`
	SpawnIntervalMS float64    `yaml:"spawn_interval_ms"`
	Z               float64    `yaml:"z"`
	SpawnArea       BoxSpec    `yaml:"spawn_area"`
	SpeedRange      int        `yaml:"speed_range"`
	SpeedDivisor    float64    `yaml:"speed_divisor"`
	Box             BoxSpec    `yaml:"box"`
	Sprite          SpriteSpec `yaml:"sprite"`
	Burst           BurstSpec  `yaml:"burst"`
}

type EffectsSpec struct {
	Particle ParticleSpec `yaml:"particle"`
	Trail    TrailSpec    `yaml:"trail"`
	Bounce   BounceSpec   `yaml:"bounce"`
	Collect  BurstSpec    `yaml:"collect"`
}

type ParticleSpec struct {
	Sprite     SpriteSpec `yaml:"sprite"`
	BurstCount int        `yaml:"burst_count"`
}

type TrailSpec struct {
	IntervalMS float64       `yaml:"interval_ms"`
	LifetimeMS float64       `yaml:"lifetime_ms"`
	Default    ColorPairSpec `yaml:"default"`
}

type BounceSpec struct {
	Impulse float64   `yaml:"impulse"`
	Burst   BurstSpec `yaml:"burst"`
}

type BurstSpec struct {
	Colors     ColorPairSpec `yaml:"colors"`
	LifetimeMS float64       `yaml:"lifetime_ms"`
}

type ColorPairSpec struct {
	Start YAMLColor `yaml:"start"`
	End   YAMLColor `yaml:"end"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Rotation float64 `yaml:"rotation"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoxSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteSpec struct {
	Index int        `yaml:"index"`
	Color *YAMLColor `yaml:"color"`
}

// Tint returns the sprite color, or white when none is given.
func (s SpriteSpec) Tint() component.Color {
	if s.Color == nil {
		return component.White
	}
	return s.Color.Color
}

var namedColors = map[string]component.Color{
	"white":  component.White,
	"black":  component.Black,
	"yellow": component.Yellow,
	"purple": component.Purple,
	"cyan":   component.Cyan,
	"blue":   component.Blue,
	"pink":   component.Pink,
	"green":  component.Green,
}

// YAMLColor decodes a palette name ("yellow"), "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	component.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := namedColors[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (float32, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return float32(v) / 255, err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := float32(1)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = component.Color{R: r, G: g, B: b, A: a}
	return nil
}
