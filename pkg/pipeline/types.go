// Package pipeline defines the stage contract and the values passed between
// the stages of an orb build.
package pipeline

import (
	"context"
	"fmt"
	"image"

	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/raster"
	"github.com/user/orbsmith/pkg/ring"
)

// Stage is one step of an orb build.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc adapts a function to Stage. Tests use it to stub stages.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Orb names used for debug output and default file names.
const (
	OrbFull   = "full"
	OrbMedium = "medium"
	OrbLow    = "low"
)

// ImageResult is the output of stages that produce a single image.
type ImageResult struct {
	Image *raster.Image
}

// =============================================================================
// Load Stage Types
// =============================================================================

// LoadInput names an image file to decode. The stage returns an ImageResult.
type LoadInput struct {
	Orb  string
	Path string
}

// =============================================================================
// Transform Stage Types
// =============================================================================

// TransformOp is one whole-image transform.
type TransformOp int

const (
	FlipHorizontal TransformOp = iota
	FlipVertical
	RotateLeft  // 90° counter-clockwise
	RotateRight // 90° clockwise
)

// String returns the recipe name of the transform.
func (op TransformOp) String() string {
	switch op {
	case FlipHorizontal:
		return "flip-h"
	case FlipVertical:
		return "flip-v"
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	default:
		return "unknown"
	}
}

// ParseTransformOp parses a recipe transform name.
func ParseTransformOp(s string) (TransformOp, error) {
	switch s {
	case "flip-h":
		return FlipHorizontal, nil
	case "flip-v":
		return FlipVertical, nil
	case "rotate-left":
		return RotateLeft, nil
	case "rotate-right":
		return RotateRight, nil
	default:
		return 0, fmt.Errorf("unknown transform %q", s)
	}
}

// TransformInput applies Ops in order to Image.
type TransformInput struct {
	Orb   string
	Image *raster.Image
	Ops   []TransformOp
}

// =============================================================================
// Crop Stage Types
// =============================================================================

// CropInput describes the circle to cut. A nil Circle uses the default
// centered circle. Center and radius are clamped like the interactive tool.
type CropInput struct {
	Orb    string
	Image  *raster.Image
	Circle *circle.Spec
}

// CropResult holds the cropped image and the committed circle.
type CropResult struct {
	Image *raster.Image
	Prior circle.PriorCrop
}

// =============================================================================
// Ring Stage Types
// =============================================================================

// RingInput builds the ring composite.
type RingInput struct {
	Orb   string
	Image *raster.Image
	Prior circle.PriorCrop
	Style ring.Style
}

// =============================================================================
// Broken Stage Types
// =============================================================================

// BrokenInput transplants Reference's alpha onto Base, then applies eraser
// strokes at Erase (raster coordinates of Base).
type BrokenInput struct {
	Orb        string
	Base       *raster.Image
	Reference  *raster.Image
	Erase      []image.Point
	EraserSize int
}

// =============================================================================
// Export Stage Types
// =============================================================================

// ExportInput writes Image as PNG to Path.
type ExportInput struct {
	Orb   string
	Image *raster.Image
	Path  string
	// Native keeps the image size; otherwise it is resized to 64×64.
	Native bool
	// Backup also writes a byte-identical Path+".backup".
	Backup bool
}

// ExportResult describes the written file.
type ExportResult struct {
	Path       string
	BackupPath string
	Width      int
	Height     int
	FileSize   int64
}
