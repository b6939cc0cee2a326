package main

import (
	"fmt"
	"image"
	"math/rand/v2"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/orbsmith/pkg/adapters/sqlitepresets"
	"github.com/user/orbsmith/pkg/adapters/yamlpresets"
	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/config"
	"github.com/user/orbsmith/pkg/orbsmith"
	"github.com/user/orbsmith/pkg/orchestrator"
	"github.com/user/orbsmith/pkg/paint"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
	"github.com/user/orbsmith/pkg/ring"
	"github.com/user/orbsmith/pkg/sheet"
	brokenstage "github.com/user/orbsmith/pkg/stages/broken"
	"github.com/user/orbsmith/pkg/stages/crop"
	"github.com/user/orbsmith/pkg/stages/export"
	"github.com/user/orbsmith/pkg/stages/load"
	ringstage "github.com/user/orbsmith/pkg/stages/ring"
	"github.com/user/orbsmith/pkg/stages/transform"
	"github.com/user/orbsmith/pkg/summarizer"
)

const defaultPresetStore = "ring_presets.yaml"

// =============================================================================
// Shared flags
// =============================================================================

func outputFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Required: required,
			Usage:    l10n.T("Output PNG file path"),
			Category: l10n.T("Output"),
		},
		&cli.BoolFlag{
			Name:     "native",
			Usage:    l10n.T("Keep the native size instead of resizing to 64x64"),
			Category: l10n.T("Output"),
		},
		&cli.BoolFlag{
			Name:     "no-backup",
			Usage:    l10n.T("Do not write a .backup copy next to each output"),
			Category: l10n.T("Output"),
		},
	}
}

func transformFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:     "transform",
		Aliases:  []string{"t"},
		Usage:    l10n.T("Transform applied before cropping (flip-h, flip-v, rotate-left, rotate-right); repeatable"),
		Category: l10n.T("Crop"),
	}
}

func circleFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "circle",
		Usage:    l10n.T("Crop circle as x,y,radius in image pixels (default: centered)"),
		Category: l10n.T("Crop"),
	}
}

func ringFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "color",
			Usage:    l10n.T("Ring color (hex, e.g., #000000)"),
			Category: l10n.T("Ring"),
		},
		&cli.IntFlag{
			Name:     "width",
			Usage:    l10n.T("Ring width in pixels (1-100)"),
			Category: l10n.T("Ring"),
		},
		&cli.StringFlag{
			Name:     "preset",
			Usage:    l10n.T("Ring preset name, overrides color and width"),
			Category: l10n.T("Ring"),
		},
		&cli.StringFlag{
			Name:     "presets",
			Value:    defaultPresetStore,
			Usage:    l10n.T("Preset store (.yaml, or .db/.sqlite for SQLite)"),
			Category: l10n.T("Ring"),
		},
	}
}

// =============================================================================
// build
// =============================================================================

func buildCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "recipe",
			Aliases:  []string{"r"},
			Usage:    l10n.T("YAML build recipe"),
			Category: l10n.T("Input"),
		},
		transformFlag(),
		circleFlag(),
		&cli.StringFlag{
			Name:     "native-output",
			Usage:    l10n.T("Also write the full orb at its native size"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "medium",
			Usage:    l10n.T("Reference image for the medium-health orb"),
			Category: l10n.T("Damage"),
		},
		&cli.StringFlag{
			Name:     "low",
			Usage:    l10n.T("Reference image for the low-health orb"),
			Category: l10n.T("Damage"),
		},
		&cli.StringFlag{
			Name:     "summary",
			Usage:    l10n.T("Write a markdown build summary to this path"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "sheet",
			Usage:    l10n.T("Write a contact sheet of the built orbs to this path"),
			Category: l10n.T("Output"),
		},
	}
	flags = append(flags, outputFlags(false)...)
	flags = append(flags, ringFlags()...)

	return &cli.Command{
		Name:        "build",
		Usage:       l10n.T("Build the full, medium and low health orbs"),
		Description: l10n.T("Crop the source image to a circle, draw the ring and derive the damaged variants from reference images."),
		ArgsUsage:   "[SOURCE]",
		Flags:       flags,
		Action:      runBuild,
	}
}

func runBuild(c *cli.Context) error {
	cfg := config.Defaults()
	if path := c.String("recipe"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := applyBuildFlags(c, &cfg); err != nil {
		return err
	}

	env, err := newRuntimeEnv(c, &cfg)
	if err != nil {
		return err
	}

	oc, err := cfg.ToOrchestratorConfig()
	if err != nil {
		return err
	}
	builder := orbsmith.FromConfig(oc)
	if cfg.Ring.Preset != "" {
		style, err := resolvePreset(c.String("presets"), cfg.Ring.Preset, env)
		if err != nil {
			return err
		}
		builder.WithRingStyle(style)
	}
	orchConfig := builder.Build()

	orch := orchestrator.New(
		load.NewStage(env.fs, env.renderer, env.log),
		transform.NewStage(env.sink, env.log),
		crop.NewStage(env.sink, env.log),
		ringstage.NewStage(env.renderer, env.sink, env.log),
		brokenstage.NewStage(env.sink, env.log),
		export.NewStage(env.fs, env.renderer, env.log),
		env.sink,
		env.log,
	)

	env.log.Info("Building orbs from %s", cfg.Source)
	result, err := orch.Run(c.Context, orchConfig)
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), env.fs)
		if err := writer.Write(path, buildSummary(orchConfig, result)); err != nil {
			// The orbs are already written; a missing summary is not fatal.
			env.log.Warn("Failed to write summary: %s", err.Error())
		} else {
			env.log.Info("Summary saved to %s", path)
		}
	}

	if path := c.String("sheet"); path != "" {
		input := sheet.Input{OutputPath: path}
		for _, orb := range result.Orbs {
			input.Paths = append(input.Paths, orb.Export.Path)
			input.Labels = append(input.Labels, orb.Name)
		}
		stage := sheet.New(env.fs, env.renderer, env.log, sheet.DefaultOptions())
		if _, err := stage.Execute(c.Context, input); err != nil {
			return err
		}
	}
	return nil
}

// applyBuildFlags overrides recipe values with explicitly given flags.
func applyBuildFlags(c *cli.Context, cfg *config.Config) error {
	if c.Args().Present() {
		cfg.Source = c.Args().First()
	}
	if c.IsSet("transform") {
		cfg.Transforms = c.StringSlice("transform")
	}
	if c.IsSet("circle") {
		spec, err := parseCircle(c.String("circle"))
		if err != nil {
			return err
		}
		cfg.Circle = &config.CircleConfig{X: spec.CenterX, Y: spec.CenterY, Radius: spec.Radius}
	}
	if c.IsSet("color") {
		cfg.Ring.Color = c.String("color")
	}
	if c.IsSet("width") {
		cfg.Ring.Width = c.Int("width")
	}
	if c.IsSet("preset") {
		cfg.Ring.Preset = c.String("preset")
	}
	if c.IsSet("medium") {
		cfg.Medium.Reference = c.String("medium")
	}
	if c.IsSet("low") {
		cfg.Low.Reference = c.String("low")
	}
	if c.IsSet("output") {
		cfg.Output.Full = c.String("output")
	}
	if c.IsSet("native-output") {
		cfg.Output.FullNative = c.String("native-output")
	}
	if c.Bool("native") {
		cfg.Output.Native = true
	}
	if c.Bool("no-backup") {
		cfg.Output.Backup = false
	}
	return nil
}

// buildSummary collects the summary data from a finished build.
func buildSummary(cfg orchestrator.Config, result orchestrator.RunResult) *summarizer.Summary {
	transforms := make([]string, 0, len(cfg.Transforms))
	for _, op := range cfg.Transforms {
		transforms = append(transforms, op.String())
	}
	settings := summarizer.Settings{
		Transforms: transforms,
		RingColor:  config.FormatColor(result.Ring.Color),
		RingWidth:  result.Ring.Width,
		NativeSize: cfg.NativeSize,
		Backup:     cfg.Backup,
	}
	if result.Circle.Radius > 0 {
		settings.Circle = &summarizer.CircleInfo{
			X:      result.Circle.CenterX,
			Y:      result.Circle.CenterY,
			Radius: result.Circle.Radius,
		}
	}

	b := summarizer.NewBuilder().
		WithSource(cfg.SourcePath, result.SourceWidth, result.SourceHeight).
		WithSettings(settings)
	for _, orb := range result.Orbs {
		b.AddOrb(summarizer.OrbInfo{
			Name:       orb.Name,
			Path:       orb.Export.Path,
			BackupPath: orb.Export.BackupPath,
			Width:      orb.Export.Width,
			Height:     orb.Export.Height,
			FileSize:   orb.Export.FileSize,
		})
	}
	return b.Build()
}

// =============================================================================
// crop
// =============================================================================

func cropCommand() *cli.Command {
	flags := []cli.Flag{transformFlag(), circleFlag()}
	flags = append(flags, outputFlags(true)...)
	return &cli.Command{
		Name:      "crop",
		Usage:     l10n.T("Crop an image to a circle"),
		ArgsUsage: "SOURCE",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			editor, env, err := openEditor(c)
			if err != nil {
				return err
			}
			if err := cropEditor(c, editor); err != nil {
				return err
			}
			return saveEditor(c, editor, env)
		},
	}
}

// cropEditor applies --transform and then crops to --circle or the centered
// default circle.
func cropEditor(c *cli.Context, editor *orbsmith.Editor) error {
	for _, name := range c.StringSlice("transform") {
		op, err := pipeline.ParseTransformOp(name)
		if err != nil {
			return err
		}
		if err := editor.Transform(op); err != nil {
			return err
		}
	}

	var spec circle.Spec
	if c.IsSet("circle") {
		var err error
		if spec, err = parseCircle(c.String("circle")); err != nil {
			return err
		}
	} else {
		img, err := editor.Owner().Borrow()
		if err != nil {
			return err
		}
		spec = circle.DefaultSpec(img.Width(), img.Height())
	}
	return editor.ApplyCircleCrop(spec)
}

// =============================================================================
// ring
// =============================================================================

func ringCommand() *cli.Command {
	flags := []cli.Flag{
		transformFlag(),
		circleFlag(),
		&cli.StringFlag{
			Name:     "save-preset",
			Usage:    l10n.T("Store the resulting ring style under this name"),
			Category: l10n.T("Ring"),
		},
	}
	flags = append(flags, ringFlags()...)
	flags = append(flags, outputFlags(true)...)
	return &cli.Command{
		Name:        "ring",
		Usage:       l10n.T("Draw a colored ring around an image"),
		Description: l10n.T("Crop the image when --circle or --transform is given, then composite the ring over it."),
		ArgsUsage:   "SOURCE",
		Flags:       flags,
		Action:      runRing,
	}
}

func runRing(c *cli.Context) error {
	editor, env, err := openEditor(c)
	if err != nil {
		return err
	}
	if c.IsSet("circle") || c.IsSet("transform") {
		if err := cropEditor(c, editor); err != nil {
			return err
		}
	}

	session, err := editor.RingSession()
	if err != nil {
		return err
	}

	var store ports.PresetStore
	if c.IsSet("preset") || c.IsSet("save-preset") {
		s, closeStore, err := openPresetStore(c.String("presets"), env)
		if err != nil {
			return err
		}
		defer closeStore()
		store = s
	}

	if name := c.String("preset"); name != "" {
		preset, err := store.Get(name)
		if err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		if err := session.ApplyPreset(preset); err != nil {
			return err
		}
		env.log.Info("Using ring preset %s", name)
	}
	if c.IsSet("color") {
		rgb, err := config.ParseColor(c.String("color"))
		if err != nil {
			return err
		}
		if err := session.SetColor(rgb); err != nil {
			return err
		}
	}
	if c.IsSet("width") {
		if err := session.SetWidth(c.Int("width")); err != nil {
			return err
		}
	}
	if name := c.String("save-preset"); name != "" {
		if err := session.SavePreset(store, name); err != nil {
			return err
		}
		env.log.Info("Preset %s saved", name)
	}

	editor.Owner().Replace(session.Apply())
	return saveEditor(c, editor, env)
}

// =============================================================================
// broken
// =============================================================================

func brokenCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "reference",
			Required: true,
			Usage:    l10n.T("Image whose alpha channel is copied onto the orb"),
			Category: l10n.T("Damage"),
		},
		&cli.StringSliceFlag{
			Name:     "erase",
			Usage:    l10n.T("Eraser stroke at x,y in orb pixels; repeatable"),
			Category: l10n.T("Damage"),
		},
		&cli.IntFlag{
			Name:     "eraser-size",
			Value:    paint.DefaultEraserSize,
			Usage:    l10n.T("Eraser diameter in pixels (5-50)"),
			Category: l10n.T("Damage"),
		},
	}
	flags = append(flags, outputFlags(true)...)
	return &cli.Command{
		Name:        "broken",
		Usage:       l10n.T("Derive a damaged orb from a reference image"),
		Description: l10n.T("Copy the alpha channel of the reference onto the orb, then apply eraser strokes."),
		ArgsUsage:   "ORB",
		Flags:       flags,
		Action:      runBroken,
	}
}

func runBroken(c *cli.Context) error {
	editor, env, err := openEditor(c)
	if err != nil {
		return err
	}

	reference, err := load.NewStage(env.fs, env.renderer, env.log).Execute(c.Context, pipeline.LoadInput{
		Orb:  "reference",
		Path: c.String("reference"),
	})
	if err != nil {
		return err
	}

	session, err := editor.BrokenSession()
	if err != nil {
		return err
	}
	if err := session.SetReference(reference.Image); err != nil {
		return err
	}

	session.Eraser().SetSize(c.Int("eraser-size"))
	for _, s := range c.StringSlice("erase") {
		pt, err := parsePoint(s)
		if err != nil {
			return err
		}
		if err := session.Erase(pt.X, pt.Y); err != nil {
			return err
		}
	}

	out, err := session.Result()
	if err != nil {
		return err
	}
	editor.Owner().Replace(out)
	return saveEditor(c, editor, env)
}

// =============================================================================
// paint
// =============================================================================

func paintCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "brush",
			Value:    paint.Draw.String(),
			Usage:    l10n.T("Brush: draw or erase"),
			Category: l10n.T("Paint"),
		},
		&cli.IntFlag{
			Name:     "size",
			Value:    paint.DefaultBrushSize,
			Usage:    l10n.T("Brush radius in pixels (1-30)"),
			Category: l10n.T("Paint"),
		},
		&cli.StringSliceFlag{
			Name:     "at",
			Usage:    l10n.T("Stroke at x,y in image pixels; repeatable"),
			Category: l10n.T("Paint"),
		},
	}
	flags = append(flags, outputFlags(true)...)
	return &cli.Command{
		Name:        "paint",
		Usage:       l10n.T("Touch up an image with brush strokes"),
		Description: l10n.T("Draw opaque black or erase to transparency at each --at point."),
		ArgsUsage:   "SOURCE",
		Flags:       flags,
		Action:      runPaint,
	}
}

func runPaint(c *cli.Context) error {
	kind, err := paint.ParseKind(c.String("brush"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	editor, env, err := openEditor(c)
	if err != nil {
		return err
	}

	tool := paint.Tool{Kind: kind}.WithSize(c.Int("size"))
	for _, s := range c.StringSlice("at") {
		pt, err := parsePoint(s)
		if err != nil {
			return err
		}
		touched, err := editor.PaintStroke(tool, pt.X, pt.Y)
		if err != nil {
			return err
		}
		if !touched {
			env.log.Warn("Stroke at (%d, %d) is outside the image", pt.X, pt.Y)
		}
	}
	return saveEditor(c, editor, env)
}

// =============================================================================
// mask
// =============================================================================

func maskCommand() *cli.Command {
	return &cli.Command{
		Name:        "mask",
		Usage:       l10n.T("Paint a broken-orb mask"),
		Description: l10n.T("Paint solid or spray strokes into a 512x512 mask and export it as a transparent PNG."),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    l10n.T("Output PNG file path"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "preview",
				Usage:    l10n.T("Also write the mask drawn over the reference image"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "reference",
				Usage:    l10n.T("Background image for the preview"),
				Category: l10n.T("Mask"),
			},
			&cli.StringSliceFlag{
				Name:     "solid",
				Usage:    l10n.T("Solid stroke at x,y; repeatable"),
				Category: l10n.T("Mask"),
			},
			&cli.StringSliceFlag{
				Name:     "spray",
				Usage:    l10n.T("Spray stroke at x,y; repeatable"),
				Category: l10n.T("Mask"),
			},
			&cli.IntFlag{
				Name:     "radius",
				Value:    paint.DefaultMaskBrushRadius,
				Usage:    l10n.T("Brush radius in pixels (1-100)"),
				Category: l10n.T("Mask"),
			},
			&cli.BoolFlag{
				Name:     "invert",
				Usage:    l10n.T("Invert the mask after painting"),
				Category: l10n.T("Mask"),
			},
			&cli.Uint64Flag{
				Name:     "seed",
				Usage:    l10n.T("Seed for spray strokes (0 = random)"),
				Category: l10n.T("Mask"),
			},
		},
		Action: runMask,
	}
}

func runMask(c *cli.Context) error {
	env, err := newRuntimeEnv(c, nil)
	if err != nil {
		return err
	}
	editor := orbsmith.NewEditor(env.renderer, env.fs, env.log)
	if seed := c.Uint64("seed"); seed != 0 {
		editor.SetMask(paint.NewBinaryMask(rand.New(rand.NewPCG(seed, seed))))
	}

	brush := paint.NewMaskBrush().WithRadius(c.Int("radius"))
	strokes := []struct {
		kind   paint.MaskKind
		points []string
	}{
		{paint.Solid, c.StringSlice("solid")},
		{paint.Spray, c.StringSlice("spray")},
	}
	for _, s := range strokes {
		brush.Kind = s.kind
		for _, p := range s.points {
			pt, err := parsePoint(p)
			if err != nil {
				return err
			}
			editor.PaintMaskStroke(brush, pt.X, pt.Y)
		}
	}
	if c.Bool("invert") {
		editor.Mask().Invert()
	}

	if path := c.String("preview"); path != "" {
		var background *raster.Image
		if ref := c.String("reference"); ref != "" {
			if err := editor.Open(c.Context, ref); err != nil {
				return err
			}
			taken, err := editor.TakeImage()
			if err != nil {
				return err
			}
			if background, err = paint.LoadReference(taken); err != nil {
				return err
			}
		}
		preview, err := editor.Mask().Render(background)
		if err != nil {
			return err
		}
		editor.SetImage(preview)
		if _, err := editor.Save(c.Context, path, true, false); err != nil {
			return err
		}
	}

	editor.SetImage(editor.ExportMask())
	_, err = editor.Save(c.Context, c.String("output"), true, false)
	return err
}

// =============================================================================
// presets
// =============================================================================

func presetsCommand() *cli.Command {
	storeFlag := &cli.StringFlag{
		Name:  "store",
		Value: defaultPresetStore,
		Usage: l10n.T("Preset store (.yaml, or .db/.sqlite for SQLite)"),
	}
	return &cli.Command{
		Name:  "presets",
		Usage: l10n.T("Manage ring presets"),
		Flags: []cli.Flag{storeFlag},
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: l10n.T("List stored ring presets"),
				Action: func(c *cli.Context) error {
					return withPresetStore(c, func(store ports.PresetStore, _ *runtimeEnv) error {
						presets, err := store.List()
						if err != nil {
							return err
						}
						names := make([]string, 0, len(presets))
						for name := range presets {
							names = append(names, name)
						}
						sort.Strings(names)
						for _, name := range names {
							p := presets[name]
							fmt.Fprintf(c.App.Writer, "%s\t%s\t%d\n", name, config.FormatColor(p.Color), p.Thickness)
						}
						return nil
					})
				},
			},
			{
				Name:      "save",
				Usage:     l10n.T("Save a ring preset"),
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "color", Value: "#000000", Usage: l10n.T("Ring color (hex, e.g., #000000)")},
					&cli.IntFlag{Name: "width", Value: ring.DefaultWidth, Usage: l10n.T("Ring width in pixels (1-100)")},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit(l10n.T("preset name is required"), 2)
					}
					rgb, err := config.ParseColor(c.String("color"))
					if err != nil {
						return err
					}
					style := ring.Style{Color: rgb, Width: c.Int("width")}.Normalize()
					return withPresetStore(c, func(store ports.PresetStore, env *runtimeEnv) error {
						if err := store.Save(name, style.Preset()); err != nil {
							return err
						}
						env.log.Info("Preset %s saved", name)
						return nil
					})
				},
			},
			{
				Name:      "delete",
				Usage:     l10n.T("Delete a ring preset"),
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit(l10n.T("preset name is required"), 2)
					}
					return withPresetStore(c, func(store ports.PresetStore, env *runtimeEnv) error {
						if err := store.Delete(name); err != nil {
							return err
						}
						env.log.Info("Preset %s deleted", name)
						return nil
					})
				},
			},
		},
	}
}

func withPresetStore(c *cli.Context, fn func(ports.PresetStore, *runtimeEnv) error) error {
	env, err := newRuntimeEnv(c, nil)
	if err != nil {
		return err
	}
	store, closeStore, err := openPresetStore(c.String("store"), env)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store, env)
}

// openPresetStore picks the SQLite store for .db/.sqlite paths and the YAML
// store otherwise.
func openPresetStore(path string, env *runtimeEnv) (ports.PresetStore, func() error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		store, err := sqlitepresets.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return yamlpresets.New(path, env.fs), func() error { return nil }, nil
	}
}

func resolvePreset(path, name string, env *runtimeEnv) (ring.Style, error) {
	store, closeStore, err := openPresetStore(path, env)
	if err != nil {
		return ring.Style{}, err
	}
	defer closeStore()

	preset, err := store.Get(name)
	if err != nil {
		return ring.Style{}, fmt.Errorf("preset %q: %w", name, err)
	}
	env.log.Info("Using ring preset %s", name)
	return ring.FromPreset(preset), nil
}

// =============================================================================
// sheet
// =============================================================================

func sheetCommand() *cli.Command {
	return &cli.Command{
		Name:      "sheet",
		Usage:     l10n.T("Lay out orb images side by side"),
		ArgsUsage: "ORB...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    l10n.T("Output image path (.png, or .jpg for JPEG)"),
			},
			&cli.StringSliceFlag{
				Name:  "label",
				Usage: l10n.T("Caption for each orb in order; repeatable"),
			},
			&cli.BoolFlag{
				Name:  "no-labels",
				Usage: l10n.T("Do not draw captions"),
			},
			&cli.IntFlag{
				Name:  "cell-size",
				Value: sheet.DefaultOptions().CellSize,
				Usage: l10n.T("Size of each orb cell in pixels"),
			},
			&cli.IntFlag{
				Name:  "gap",
				Value: sheet.DefaultOptions().Gap,
				Usage: l10n.T("Gap between cells in pixels"),
			},
		},
		Action: func(c *cli.Context) error {
			if !c.Args().Present() {
				return cli.Exit(l10n.T("at least one orb image is required"), 2)
			}
			env, err := newRuntimeEnv(c, nil)
			if err != nil {
				return err
			}
			opts := sheet.DefaultOptions()
			opts.CellSize = c.Int("cell-size")
			opts.Gap = c.Int("gap")
			opts.Labels = !c.Bool("no-labels")

			_, err = sheet.New(env.fs, env.renderer, env.log, opts).Execute(c.Context, sheet.Input{
				Paths:      c.Args().Slice(),
				Labels:     c.StringSlice("label"),
				OutputPath: c.String("output"),
			})
			return err
		},
	}
}

// =============================================================================
// Helpers
// =============================================================================

// openEditor creates the runtime adapters and opens the first argument as
// the active image.
func openEditor(c *cli.Context) (*orbsmith.Editor, *runtimeEnv, error) {
	if !c.Args().Present() {
		return nil, nil, cli.Exit(l10n.T("an input image is required"), 2)
	}
	env, err := newRuntimeEnv(c, nil)
	if err != nil {
		return nil, nil, err
	}
	editor := orbsmith.NewEditor(env.renderer, env.fs, env.log)
	if err := editor.Open(c.Context, c.Args().First()); err != nil {
		return nil, nil, err
	}
	return editor, env, nil
}

func saveEditor(c *cli.Context, editor *orbsmith.Editor, env *runtimeEnv) error {
	path := c.String("output")
	if _, err := editor.Save(c.Context, path, c.Bool("native"), !c.Bool("no-backup")); err != nil {
		return err
	}
	env.log.Info("Output saved to %s", path)
	return nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (image.Point, error) {
	v, err := parseInts(s, 2)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(v[0], v[1]), nil
}

// parseCircle parses "x,y,radius".
func parseCircle(s string) (circle.Spec, error) {
	v, err := parseInts(s, 3)
	if err != nil {
		return circle.Spec{}, err
	}
	spec := circle.Spec{CenterX: v[0], CenterY: v[1], Radius: v[2]}
	return spec, spec.Validate()
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated integers, got %q", n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q in %q", p, s)
		}
		out[i] = v
	}
	return out, nil
}
