package orbsmith

import (
	"image"

	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/orchestrator"
	"github.com/user/orbsmith/pkg/paint"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ring"
)

// ConfigBuilder provides a fluent API for building a skin build
// configuration.
type ConfigBuilder struct {
	config orchestrator.Config
}

// NewConfigBuilder creates a builder for source with default settings.
func NewConfigBuilder(source string) *ConfigBuilder {
	config := orchestrator.DefaultConfig()
	config.SourcePath = source
	config.Medium.EraserSize = paint.DefaultEraserSize
	config.Low.EraserSize = paint.DefaultEraserSize
	return &ConfigBuilder{config: config}
}

// FromConfig starts a builder from an existing configuration, e.g. a loaded
// recipe that command-line flags override.
func FromConfig(config orchestrator.Config) *ConfigBuilder {
	return &ConfigBuilder{config: config}
}

// Build returns the built configuration.
func (b *ConfigBuilder) Build() orchestrator.Config {
	config := b.config
	config.Ring = config.Ring.Normalize()
	return config
}

// WithTransforms appends whole-image transforms applied before cropping.
func (b *ConfigBuilder) WithTransforms(ops ...pipeline.TransformOp) *ConfigBuilder {
	b.config.Transforms = append(b.config.Transforms, ops...)
	return b
}

// WithCircle sets the crop circle in raster coordinates.
func (b *ConfigBuilder) WithCircle(cx, cy, radius int) *ConfigBuilder {
	b.config.Circle = &circle.Spec{CenterX: cx, CenterY: cy, Radius: radius}
	return b
}

// WithRingColor sets the ring color.
func (b *ConfigBuilder) WithRingColor(rgb [3]uint8) *ConfigBuilder {
	b.config.Ring.Color = rgb
	return b
}

// WithRingWidth sets the ring width (values below 1 become 1).
func (b *ConfigBuilder) WithRingWidth(width int) *ConfigBuilder {
	b.config.Ring.Width = width
	return b
}

// WithRingStyle sets color and width together, e.g. from a preset.
func (b *ConfigBuilder) WithRingStyle(style ring.Style) *ConfigBuilder {
	b.config.Ring = style
	return b
}

// WithOutput sets the full-health output path.
func (b *ConfigBuilder) WithOutput(path string) *ConfigBuilder {
	b.config.FullPath = path
	return b
}

// WithNativeOutput also writes the full orb at its native size.
func (b *ConfigBuilder) WithNativeOutput(path string) *ConfigBuilder {
	b.config.FullNativePath = path
	return b
}

// WithMedium enables the medium-health orb.
func (b *ConfigBuilder) WithMedium(reference, output string) *ConfigBuilder {
	b.config.Medium.ReferencePath = reference
	if output != "" {
		b.config.Medium.OutputPath = output
	}
	return b
}

// WithLow enables the low-health orb.
func (b *ConfigBuilder) WithLow(reference, output string) *ConfigBuilder {
	b.config.Low.ReferencePath = reference
	if output != "" {
		b.config.Low.OutputPath = output
	}
	return b
}

// WithMediumErase adds eraser strokes to the medium orb.
func (b *ConfigBuilder) WithMediumErase(size int, points ...image.Point) *ConfigBuilder {
	b.config.Medium.EraserSize = size
	b.config.Medium.Erase = append(b.config.Medium.Erase, points...)
	return b
}

// WithLowErase adds eraser strokes to the low orb.
func (b *ConfigBuilder) WithLowErase(size int, points ...image.Point) *ConfigBuilder {
	b.config.Low.EraserSize = size
	b.config.Low.Erase = append(b.config.Low.Erase, points...)
	return b
}

// WithNativeSize skips the 64×64 resize for every orb.
func (b *ConfigBuilder) WithNativeSize(native bool) *ConfigBuilder {
	b.config.NativeSize = native
	return b
}

// WithBackup enables or disables the .backup copies.
func (b *ConfigBuilder) WithBackup(backup bool) *ConfigBuilder {
	b.config.Backup = backup
	return b
}
