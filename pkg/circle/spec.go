// Package circle computes and applies circular alpha cutouts of the active
// raster, and tracks the interactive crop tool that places them.
package circle

import (
	"errors"
	"fmt"
)

// ErrInvalidRadius is returned for a radius below 1.
var ErrInvalidRadius = errors.New("circle: radius must be at least 1")

// Spec is a circle in raster coordinates.
type Spec struct {
	CenterX int
	CenterY int
	Radius  int
}

// Validate checks the radius. Centers are not checked: an off-raster circle
// simply masks everything out.
func (s Spec) Validate() error {
	if s.Radius < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, s.Radius)
	}
	return nil
}

// DefaultSpec returns the circle a new crop starts with on a w×h raster:
// centered, slightly smaller than the largest circle that fits.
func DefaultSpec(w, h int) Spec {
	return Spec{
		CenterX: w / 2,
		CenterY: h / 2,
		Radius:  max(1, min(w, h)/2-startInset),
	}
}

// Fits reports whether the circle lies entirely inside a w×h raster.
func (s Spec) Fits(w, h int) bool {
	return s.Radius <= min(s.CenterX, s.CenterY, w-s.CenterX, h-s.CenterY)
}

// PriorCrop is the last committed crop, carried from the crop stage into the
// ring stage. The zero value means no crop was committed.
type PriorCrop struct {
	spec  Spec
	valid bool
}

// Committed wraps a committed spec.
func Committed(s Spec) PriorCrop {
	return PriorCrop{spec: s, valid: true}
}

// NoCrop returns the absent value.
func NoCrop() PriorCrop {
	return PriorCrop{}
}

// Get returns the spec and whether one was committed.
func (p PriorCrop) Get() (Spec, bool) {
	return p.spec, p.valid
}

// Present reports whether a crop was committed.
func (p PriorCrop) Present() bool {
	return p.valid
}
