// Package orchestrator coordinates the stages of an orb skin build.
package orchestrator

import (
	"context"
	"fmt"
	"image"

	"gopkg.in/yaml.v3"

	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
	"github.com/user/orbsmith/pkg/ring"
)

// BrokenOrb configures one damaged variant.
type BrokenOrb struct {
	// ReferencePath is the broken reference whose alpha is transplanted.
	// An empty path skips the variant.
	ReferencePath string
	OutputPath    string
	Erase         []image.Point
	EraserSize    int
}

// Enabled reports whether the variant is built.
func (b BrokenOrb) Enabled() bool {
	return b.ReferencePath != ""
}

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	SourcePath string

	// Full-health orb
	Transforms []pipeline.TransformOp
	Circle     *circle.Spec // nil uses the default centered circle
	Ring       ring.Style
	FullPath   string
	// FullNativePath, when set, also writes the full orb at its native size
	// before the 64×64 export.
	FullNativePath string

	// Damaged variants, derived from the full orb
	Medium BrokenOrb
	Low    BrokenOrb

	// Output
	NativeSize bool // skip the 64×64 resize for every orb
	Backup     bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Ring:     ring.DefaultStyle(),
		FullPath: "full_health.png",
		Medium:   BrokenOrb{OutputPath: "medium_health.png"},
		Low:      BrokenOrb{OutputPath: "low_health.png"},
		Backup:   true,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	loadStage      pipeline.Stage[pipeline.LoadInput, pipeline.ImageResult]
	transformStage pipeline.Stage[pipeline.TransformInput, pipeline.ImageResult]
	cropStage      pipeline.Stage[pipeline.CropInput, pipeline.CropResult]
	ringStage      pipeline.Stage[pipeline.RingInput, pipeline.ImageResult]
	brokenStage    pipeline.Stage[pipeline.BrokenInput, pipeline.ImageResult]
	exportStage    pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult]
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	loadStage pipeline.Stage[pipeline.LoadInput, pipeline.ImageResult],
	transformStage pipeline.Stage[pipeline.TransformInput, pipeline.ImageResult],
	cropStage pipeline.Stage[pipeline.CropInput, pipeline.CropResult],
	ringStage pipeline.Stage[pipeline.RingInput, pipeline.ImageResult],
	brokenStage pipeline.Stage[pipeline.BrokenInput, pipeline.ImageResult],
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		loadStage:      loadStage,
		transformStage: transformStage,
		cropStage:      cropStage,
		ringStage:      ringStage,
		brokenStage:    brokenStage,
		exportStage:    exportStage,
		sink:           sink,
		logger:         logger,
	}
}

func (o *Orchestrator) saveRecipe(config Config) {
	data, err := yaml.Marshal(recipeOf(config))
	if err == nil {
		err = o.sink.SaveRecipe(data)
	}
	if err != nil {
		o.logger.Warn("Failed to save debug recipe: %s", err)
	}
}

// Run builds the full-health orb and any configured damaged variants.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Starting build")
	result := RunResult{Ring: config.Ring.Normalize()}

	if o.sink.Enabled() {
		o.saveRecipe(config)
	}

	// 1. Load source
	source, err := o.loadStage.Execute(ctx, pipeline.LoadInput{Orb: pipeline.OrbFull, Path: config.SourcePath})
	if err != nil {
		o.logger.Error("Failed to load image: %s", err)
		return RunResult{}, fmt.Errorf("load stage: %w", err)
	}
	result.SourceWidth, result.SourceHeight = source.Image.Size()
	o.logger.Info("Loaded %s: %dx%d", config.SourcePath, result.SourceWidth, result.SourceHeight)

	// 2. Full-health orb
	if err := ctx.Err(); err != nil {
		return RunResult{}, err
	}
	o.logger.Info("Building %s orb", pipeline.OrbFull)
	full, err := o.buildFull(ctx, config, source.Image, &result)
	if err != nil {
		return RunResult{}, err
	}

	if config.FullNativePath != "" {
		exported, err := o.export(ctx, pipeline.OrbFull, full, config.FullNativePath, true, config.Backup)
		if err != nil {
			return RunResult{}, err
		}
		result.Orbs = append(result.Orbs, OrbResult{Name: pipeline.OrbFull + "-native", Export: exported})
	}
	exported, err := o.export(ctx, pipeline.OrbFull, full, config.FullPath, config.NativeSize, config.Backup)
	if err != nil {
		return RunResult{}, err
	}
	result.Orbs = append(result.Orbs, OrbResult{Name: pipeline.OrbFull, Export: exported})

	// 3. Damaged variants
	variants := []struct {
		name string
		orb  BrokenOrb
	}{
		{pipeline.OrbMedium, config.Medium},
		{pipeline.OrbLow, config.Low},
	}
	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}
		if !v.orb.Enabled() {
			o.logger.Debug("Skipping %s orb: no reference", v.name)
			continue
		}
		o.logger.Info("Building %s orb", v.name)
		img, err := o.buildBroken(ctx, v.name, v.orb, full)
		if err != nil {
			return RunResult{}, err
		}
		exported, err := o.export(ctx, v.name, img, v.orb.OutputPath, config.NativeSize, config.Backup)
		if err != nil {
			return RunResult{}, err
		}
		result.Orbs = append(result.Orbs, OrbResult{Name: v.name, Export: exported})
	}

	o.logger.Info("Build completed successfully")
	return result, nil
}

func (o *Orchestrator) buildFull(ctx context.Context, config Config, source *raster.Image, result *RunResult) (*raster.Image, error) {
	transformed, err := o.transformStage.Execute(ctx, pipeline.TransformInput{
		Orb:   pipeline.OrbFull,
		Image: source,
		Ops:   config.Transforms,
	})
	if err != nil {
		o.logger.Error("Failed to apply transforms: %s", err)
		return nil, fmt.Errorf("transform stage: %w", err)
	}

	cropped, err := o.cropStage.Execute(ctx, pipeline.CropInput{
		Orb:    pipeline.OrbFull,
		Image:  transformed.Image,
		Circle: config.Circle,
	})
	if err != nil {
		o.logger.Error("Failed to crop: %s", err)
		return nil, fmt.Errorf("crop stage: %w", err)
	}
	if spec, ok := cropped.Prior.Get(); ok {
		result.Circle = spec
	}

	ringed, err := o.ringStage.Execute(ctx, pipeline.RingInput{
		Orb:   pipeline.OrbFull,
		Image: cropped.Image,
		Prior: cropped.Prior,
		Style: config.Ring,
	})
	if err != nil {
		o.logger.Error("Failed to draw ring: %s", err)
		return nil, fmt.Errorf("ring stage: %w", err)
	}
	return ringed.Image, nil
}

func (o *Orchestrator) buildBroken(ctx context.Context, name string, orb BrokenOrb, full *raster.Image) (*raster.Image, error) {
	ref, err := o.loadStage.Execute(ctx, pipeline.LoadInput{Orb: name, Path: orb.ReferencePath})
	if err != nil {
		o.logger.Error("Failed to load image: %s", err)
		return nil, fmt.Errorf("load stage (%s): %w", name, err)
	}

	broken, err := o.brokenStage.Execute(ctx, pipeline.BrokenInput{
		Orb:        name,
		Base:       full,
		Reference:  ref.Image,
		Erase:      orb.Erase,
		EraserSize: orb.EraserSize,
	})
	if err != nil {
		o.logger.Error("Failed to transplant alpha: %s", err)
		return nil, fmt.Errorf("broken stage (%s): %w", name, err)
	}
	return broken.Image, nil
}

func (o *Orchestrator) export(ctx context.Context, name string, img *raster.Image, path string, native, backup bool) (pipeline.ExportResult, error) {
	exported, err := o.exportStage.Execute(ctx, pipeline.ExportInput{
		Orb:    name,
		Image:  img,
		Path:   path,
		Native: native,
		Backup: backup,
	})
	if err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return pipeline.ExportResult{}, fmt.Errorf("export stage (%s): %w", name, err)
	}
	o.logger.Info("Output saved to %s", exported.Path)
	return exported, nil
}

// recipe is the YAML form of a Config written to the debug sink.
type recipe struct {
	Source     string         `yaml:"source"`
	Transforms []string       `yaml:"transforms,omitempty"`
	Circle     *[3]int        `yaml:"circle,omitempty,flow"`
	RingColor  string         `yaml:"ring_color"`
	RingWidth  int            `yaml:"ring_width"`
	Outputs    []string       `yaml:"outputs"`
	References []string       `yaml:"references,omitempty"`
	Native     bool           `yaml:"native,omitempty"`
	Backup     bool           `yaml:"backup"`
	Erase      map[string]int `yaml:"erase_strokes,omitempty"`
}

func recipeOf(config Config) recipe {
	r := recipe{
		Source:    config.SourcePath,
		RingWidth: config.Ring.Normalize().Width,
		RingColor: fmt.Sprintf("#%02x%02x%02x", config.Ring.Color[0], config.Ring.Color[1], config.Ring.Color[2]),
		Outputs:   []string{config.FullPath},
		Native:    config.NativeSize,
		Backup:    config.Backup,
	}
	for _, op := range config.Transforms {
		r.Transforms = append(r.Transforms, op.String())
	}
	if config.Circle != nil {
		r.Circle = &[3]int{config.Circle.CenterX, config.Circle.CenterY, config.Circle.Radius}
	}
	for name, b := range map[string]BrokenOrb{pipeline.OrbMedium: config.Medium, pipeline.OrbLow: config.Low} {
		if !b.Enabled() {
			continue
		}
		if r.Erase == nil {
			r.Erase = make(map[string]int)
		}
		r.Erase[name] = len(b.Erase)
	}
	for _, b := range []BrokenOrb{config.Medium, config.Low} {
		if b.Enabled() {
			r.Outputs = append(r.Outputs, b.OutputPath)
			r.References = append(r.References, b.ReferencePath)
		}
	}
	return r
}

// OrbResult describes one written orb.
type OrbResult struct {
	Name   string
	Export pipeline.ExportResult
}

// RunResult contains the results of a build for summary generation.
type RunResult struct {
	// Source information
	SourceWidth  int
	SourceHeight int

	// Full-health parameters actually used
	Circle circle.Spec
	Ring   ring.Style

	// Written files in build order
	Orbs []OrbResult
}
