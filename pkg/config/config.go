// Package config provides build recipe loading and management.
package config

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/orchestrator"
	"github.com/user/orbsmith/pkg/paint"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ring"
)

// Config represents a full skin build recipe.
type Config struct {
	// Input
	Source     string   `yaml:"source"`
	Transforms []string `yaml:"transforms"`

	// Full-health orb
	Circle *CircleConfig `yaml:"circle"`
	Ring   RingConfig    `yaml:"ring"`

	// Damaged variants
	Medium BrokenConfig `yaml:"medium"`
	Low    BrokenConfig `yaml:"low"`

	// Output
	Output OutputConfig `yaml:"output"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
	LogLevel string `yaml:"log_level"`
}

// CircleConfig is the crop circle in raster coordinates.
type CircleConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Radius int `yaml:"radius"`
}

// RingConfig selects the ring style. Preset, when set, is resolved by the
// caller against a preset store and overrides Color and Width.
type RingConfig struct {
	Color  string `yaml:"color"`
	Width  int    `yaml:"width"`
	Preset string `yaml:"preset"`
}

// BrokenConfig configures one damaged variant.
type BrokenConfig struct {
	Reference  string   `yaml:"reference"`
	Output     string   `yaml:"output"`
	EraserSize int      `yaml:"eraser_size"`
	Erase      [][2]int `yaml:"erase"`
}

// OutputConfig controls how orbs are written.
type OutputConfig struct {
	Full       string `yaml:"full"`
	FullNative string `yaml:"full_native"`
	Native     bool   `yaml:"native"`
	Backup     bool   `yaml:"backup"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Ring: RingConfig{
			Color: "#000000",
			Width: ring.DefaultWidth,
		},
		Medium: BrokenConfig{
			Output:     "medium_health.png",
			EraserSize: paint.DefaultEraserSize,
		},
		Low: BrokenConfig{
			Output:     "low_health.png",
			EraserSize: paint.DefaultEraserSize,
		},
		Output: OutputConfig{
			Full:   "full_health.png",
			Backup: true,
		},

		// Debug
		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads a recipe from a YAML file. Missing keys keep their
// defaults.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	return Parse(data)
}

// Parse decodes a YAML recipe over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the recipe as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(hex string) ([3]uint8, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return [3]uint8{}, fmt.Errorf("invalid color %q: want #rrggbb", hex)
	}

	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]uint8{}, fmt.Errorf("invalid color %q: %w", hex, err)
		}
		rgb[i] = uint8(v)
	}
	return rgb, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(rgb [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// RingStyle returns the configured ring style ignoring Preset.
func (c Config) RingStyle() (ring.Style, error) {
	rgb, err := ParseColor(c.Ring.Color)
	if err != nil {
		return ring.Style{}, fmt.Errorf("ring: %w", err)
	}
	return ring.Style{Color: rgb, Width: c.Ring.Width}.Normalize(), nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() (orchestrator.Config, error) {
	if c.Source == "" {
		return orchestrator.Config{}, fmt.Errorf("source is required")
	}

	ops := make([]pipeline.TransformOp, 0, len(c.Transforms))
	for _, name := range c.Transforms {
		op, err := pipeline.ParseTransformOp(name)
		if err != nil {
			return orchestrator.Config{}, err
		}
		ops = append(ops, op)
	}

	style, err := c.RingStyle()
	if err != nil {
		return orchestrator.Config{}, err
	}

	var spec *circle.Spec
	if c.Circle != nil {
		spec = &circle.Spec{CenterX: c.Circle.X, CenterY: c.Circle.Y, Radius: c.Circle.Radius}
	}

	return orchestrator.Config{
		SourcePath: c.Source,

		Transforms:     ops,
		Circle:         spec,
		Ring:           style,
		FullPath:       c.Output.Full,
		FullNativePath: c.Output.FullNative,

		Medium: c.Medium.toOrb(),
		Low:    c.Low.toOrb(),

		NativeSize: c.Output.Native,
		Backup:     c.Output.Backup,
	}, nil
}

func (b BrokenConfig) toOrb() orchestrator.BrokenOrb {
	erase := make([]image.Point, len(b.Erase))
	for i, p := range b.Erase {
		erase[i] = image.Pt(p[0], p[1])
	}
	return orchestrator.BrokenOrb{
		ReferencePath: b.Reference,
		OutputPath:    b.Output,
		Erase:         erase,
		EraserSize:    b.EraserSize,
	}
}
