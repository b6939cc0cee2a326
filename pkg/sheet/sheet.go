// Package sheet lays finished orbs side by side on one preview image.
package sheet

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

// Options configures the sheet layout.
type Options struct {
	// CellSize is the side each orb is scaled to.
	CellSize int
	// Gap is the horizontal gap between orbs in pixels.
	Gap int
	// Padding surrounds the whole sheet.
	Padding int
	// Background fills the sheet behind the orbs.
	Background color.Color
	// CellBackground fills each orb cell. Nil leaves cells on Background.
	CellBackground color.Color
	// Labels draws each orb's label under it.
	Labels     bool
	LabelColor color.Color
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		CellSize:   64,
		Gap:        10,
		Padding:    10,
		Background:     color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		CellBackground: color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
		Labels:         true,
		LabelColor:     color.White,
	}
}

const (
	labelHeight = 18
	jpegQuality = 90
)

// Input lists the orbs to place, left to right.
type Input struct {
	Paths      []string
	Labels     []string // optional, defaults to the paths
	OutputPath string
}

// Result describes the written sheet.
type Result struct {
	Width  int
	Height int
	Count  int
}

// Stage composes orb files into a single PNG.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
	opts     Options
}

// New creates a sheet stage.
func New(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger, opts Options) *Stage {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultOptions().CellSize
	}
	if opts.Background == nil {
		opts.Background = color.Transparent
	}
	if opts.LabelColor == nil {
		opts.LabelColor = color.White
	}
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("sheet"),
		opts:     opts,
	}
}

// Execute reads every orb, lays them out and writes the sheet.
func (s *Stage) Execute(ctx context.Context, input Input) (Result, error) {
	if len(input.Paths) == 0 {
		return Result{}, fmt.Errorf("no orbs to place")
	}

	images := make([]*raster.Image, len(input.Paths))
	for i, path := range input.Paths {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		data, err := s.fs.ReadFile(path)
		if err != nil {
			return Result{}, fmt.Errorf("read %s: %w", path, err)
		}
		decoded, err := s.renderer.DecodeImage(data)
		if err != nil {
			return Result{}, fmt.Errorf("decode %s: %w", path, err)
		}
		if images[i], err = raster.FromImage(decoded); err != nil {
			return Result{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	img, err := s.Compose(images, labelsFor(input))
	if err != nil {
		return Result{}, err
	}
	format, quality := formatFor(input.OutputPath)
	data, err := s.renderer.EncodeImage(img.NRGBA(), format, quality)
	if err != nil {
		return Result{}, fmt.Errorf("encode sheet: %w", err)
	}
	if err := s.fs.WriteFile(input.OutputPath, data); err != nil {
		return Result{}, fmt.Errorf("write sheet: %w", err)
	}

	s.logger.Info("Sheet with %d orbs saved to %s", len(images), input.OutputPath)
	return Result{Width: img.Width(), Height: img.Height(), Count: len(images)}, nil
}

// Compose places images in a row, each scaled to the cell size. labels may
// be nil or shorter than images.
func (s *Stage) Compose(images []*raster.Image, labels []string) (*raster.Image, error) {
	w, h := s.Size(len(images))
	canvas := s.renderer.CreateCanvas(w, h, color.Transparent)
	canvas.DrawRect(0, 0, w, h, s.opts.Background)

	cell := s.opts.CellSize
	for i, img := range images {
		x := s.opts.Padding + i*(cell+s.opts.Gap)
		if s.opts.CellBackground != nil {
			canvas.DrawRect(x, s.opts.Padding, cell, cell, s.opts.CellBackground)
		}
		var src image.Image = img.NRGBA()
		if img.Width() != cell || img.Height() != cell {
			src = s.renderer.ResizeImage(src, cell, cell)
		}
		canvas.DrawImage(src, x, s.opts.Padding)
		if s.opts.Labels && i < len(labels) {
			canvas.DrawText(labels[i], x+cell/2, s.opts.Padding+cell+labelHeight/2, ports.TextStyle{
				FontSize: 12,
				Color:    s.opts.LabelColor,
				Align:    ports.AlignCenter,
			})
		}
	}

	return raster.FromImage(canvas.ToImage())
}

// Size returns the sheet dimensions for n orbs.
func (s *Stage) Size(n int) (int, int) {
	cell := s.opts.CellSize
	w := 2*s.opts.Padding + n*cell + max(0, n-1)*s.opts.Gap
	h := 2*s.opts.Padding + cell
	if s.opts.Labels {
		h += labelHeight
	}
	return max(w, 1), max(h, 1)
}

// formatFor picks JPEG for .jpg and .jpeg outputs and PNG otherwise. JPEG
// drops alpha, so transparent areas of the sheet turn black.
func formatFor(path string) (ports.ImageFormat, int) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ports.FormatJPEG, jpegQuality
	default:
		return ports.FormatPNG, 0
	}
}

func labelsFor(input Input) []string {
	labels := make([]string, len(input.Paths))
	for i, p := range input.Paths {
		labels[i] = p
		if i < len(input.Labels) && input.Labels[i] != "" {
			labels[i] = input.Labels[i]
		}
	}
	return labels
}
