// Package ring cuts the committed circle out of the active image onto a
// square canvas and strokes a colored ring along its edge.
package ring

import (
	"image"
	"image/color"

	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

const (
	// DefaultWidth is the ring thickness a new session starts with.
	DefaultWidth = 20
	// MaxWidth is the largest thickness offered by the width control.
	MaxWidth = 100
)

// Style is the ring color and thickness in pixels.
type Style struct {
	Color [3]uint8
	Width int
}

// DefaultStyle returns a black ring of DefaultWidth.
func DefaultStyle() Style {
	return Style{Width: DefaultWidth}
}

// Normalize returns the style with its width raised to at least 1.
func (s Style) Normalize() Style {
	s.Width = max(1, s.Width)
	return s
}

// NRGBA returns the ring color as an opaque color.
func (s Style) NRGBA() color.NRGBA {
	return color.NRGBA{R: s.Color[0], G: s.Color[1], B: s.Color[2], A: 255}
}

// FromPreset converts a stored preset to a style.
func FromPreset(p ports.RingPreset) Style {
	return Style{Color: p.Color, Width: p.Thickness}
}

// Preset converts the style to its stored form.
func (s Style) Preset() ports.RingPreset {
	return ports.RingPreset{Color: s.Color, Thickness: s.Width}
}

// Compositor builds ring composites, drawing the stroke through a Renderer.
type Compositor struct {
	renderer ports.Renderer
}

// NewCompositor creates a Compositor.
func NewCompositor(renderer ports.Renderer) *Compositor {
	return &Compositor{renderer: renderer}
}

// Build returns a new square image containing the circular region of img with
// an opaque ring along its outer edge. img is not modified.
//
// With a prior crop the canvas side is 2r and img is pasted at (r-cx, r-cy),
// so the committed circle lands centered. Without one, the centered
// min(W,H) square of img is masked by its inscribed disk.
func (c *Compositor) Build(img *raster.Image, prior circle.PriorCrop, style Style) (*raster.Image, error) {
	if img == nil {
		return nil, raster.ErrEmpty
	}
	style = style.Normalize()

	circular, err := cutCircle(img, prior)
	if err != nil {
		return nil, err
	}

	side := circular.Width()
	layer, err := c.ringLayer(side, style)
	if err != nil {
		return nil, err
	}
	return raster.CompositeOver(layer, circular, 0, 0), nil
}

func cutCircle(img *raster.Image, prior circle.PriorCrop) (*raster.Image, error) {
	if spec, ok := prior.Get(); ok {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		r := spec.Radius
		canvas := raster.MustNew(2*r, 2*r)
		return raster.CompositeOver(img, canvas, r-spec.CenterX, r-spec.CenterY), nil
	}

	w, h := img.Size()
	side := min(w, h)
	left, top := (w-side)/2, (h-side)/2
	square, err := img.Crop(image.Rect(left, top, left+side, top+side))
	if err != nil {
		return nil, err
	}
	return circle.ApplyMask(square, circle.InscribedMask(side)), nil
}

// ringLayer strokes the annulus on a transparent side×side layer. The stroke
// is centered half a width inside the border so its outer edge touches it.
func (c *Compositor) ringLayer(side int, style Style) (*raster.Image, error) {
	canvas := c.renderer.CreateCanvas(side, side, color.Transparent)
	half := float64(side) / 2
	w := float64(style.Width)
	if w >= half {
		canvas.FillCircle(half, half, half, style.NRGBA())
	} else {
		canvas.DrawCircle(half, half, half-w/2, style.NRGBA(), w)
	}
	return raster.FromImage(canvas.ToImage())
}
