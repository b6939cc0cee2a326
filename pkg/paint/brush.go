// Package paint holds the pixel brushes: the draw/erase brush for the active
// image, the eraser for broken variants and the binary mask editor.
package paint

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/user/orbsmith/pkg/raster"
)

// Kind selects what a brush stroke writes.
type Kind int

const (
	// Draw paints opaque black.
	Draw Kind = iota
	// Erase paints fully transparent black.
	Erase
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Draw:
		return "draw"
	case Erase:
		return "erase"
	default:
		return "unknown"
	}
}

// ParseKind parses "draw" or "erase".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "draw":
		return Draw, nil
	case "erase":
		return Erase, nil
	default:
		return Draw, fmt.Errorf("unknown brush %q: want draw or erase", s)
	}
}

const (
	// DefaultBrushSize is the radius a new brush starts with.
	DefaultBrushSize = 5
	// MaxBrushSize is the largest radius offered by the size control.
	MaxBrushSize = 30
)

// Tool is a round brush; Size is the disk radius in raster pixels.
type Tool struct {
	Kind Kind
	Size int
}

// NewTool returns a Draw brush of DefaultBrushSize.
func NewTool() Tool {
	return Tool{Kind: Draw, Size: DefaultBrushSize}
}

// WithSize returns the tool with Size clamped to [1, MaxBrushSize].
func (t Tool) WithSize(size int) Tool {
	t.Size = max(1, min(MaxBrushSize, size))
	return t
}

// Color returns the pixel value written by the tool.
func (t Tool) Color() color.NRGBA {
	switch t.Kind {
	case Erase:
		return color.NRGBA{}
	default:
		return color.NRGBA{A: 255}
	}
}

// Stroke overwrites a filled disk of radius Size centered at (x, y). Centers
// outside img leave it unchanged and return false.
func (t Tool) Stroke(img *raster.Image, x, y int) bool {
	if img == nil || !img.Contains(x, y) {
		return false
	}
	img.FillDisk(x, y, max(1, t.Size), t.Color())
	return true
}
