package paint

import "github.com/user/orbsmith/pkg/raster"

const (
	// MinEraserSize and MaxEraserSize bound the eraser diameter.
	MinEraserSize = 5
	MaxEraserSize = 50
	// DefaultEraserSize is the diameter a new eraser starts with.
	DefaultEraserSize = 15
	// EraserStep is the size change per Grow or Shrink.
	EraserStep = 2
)

// Eraser clears alpha on broken variants. Size is a diameter; the disk radius
// is Size/2.
type Eraser struct {
	size int
}

// NewEraser returns an eraser of DefaultEraserSize.
func NewEraser() *Eraser {
	return &Eraser{size: DefaultEraserSize}
}

// Size returns the current diameter.
func (e *Eraser) Size() int { return e.size }

// SetSize sets the diameter, clamped to [MinEraserSize, MaxEraserSize].
func (e *Eraser) SetSize(size int) {
	e.size = max(MinEraserSize, min(MaxEraserSize, size))
}

// Grow increases the diameter by one step.
func (e *Eraser) Grow() { e.SetSize(e.size + EraserStep) }

// Shrink decreases the diameter by one step.
func (e *Eraser) Shrink() { e.SetSize(e.size - EraserStep) }

// Stroke zeroes the alpha of the disk centered at (x, y), leaving RGB as is.
// Centers outside img are ignored and return false.
func (e *Eraser) Stroke(img *raster.Image, x, y int) bool {
	if img == nil || !img.Contains(x, y) {
		return false
	}
	img.ClearDiskAlpha(x, y, e.size/2)
	return true
}
