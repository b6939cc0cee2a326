package paint

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/user/orbsmith/pkg/raster"
)

const (
	// MaskSize is the side of the mask editor canvas.
	MaskSize = 512

	// MaskIntact marks pixels that stay visible in the broken variant.
	MaskIntact uint8 = 255
	// MaskBroken marks painted pixels.
	MaskBroken uint8 = 0

	// DefaultMaskBrushRadius is the radius a new mask brush starts with.
	DefaultMaskBrushRadius = 20
	// MaxMaskBrushRadius is the largest radius offered by the size control.
	MaxMaskBrushRadius = 100

	minSpraySamples = 10
	maxSprayDot     = 3
)

// MaskKind selects how a mask brush paints.
type MaskKind int

const (
	// Solid fills the whole disk.
	Solid MaskKind = iota
	// Spray scatters small dots inside the disk.
	Spray
)

// String returns the kind name.
func (k MaskKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Spray:
		return "spray"
	default:
		return "unknown"
	}
}

// MaskBrush paints MaskBroken into a BinaryMask.
type MaskBrush struct {
	Kind   MaskKind
	Radius int
}

// NewMaskBrush returns a Solid brush of DefaultMaskBrushRadius.
func NewMaskBrush() MaskBrush {
	return MaskBrush{Kind: Solid, Radius: DefaultMaskBrushRadius}
}

// WithRadius returns the brush with Radius clamped to [1, MaxMaskBrushRadius].
func (b MaskBrush) WithRadius(r int) MaskBrush {
	b.Radius = max(1, min(MaxMaskBrushRadius, r))
	return b
}

// BinaryMask is a MaskSize×MaskSize single-channel mask holding only
// MaskIntact and MaskBroken.
type BinaryMask struct {
	pix *image.Gray
	rng *rand.Rand
}

// NewBinaryMask returns an all-intact mask. rng drives the spray brush; pass
// a seeded generator for reproducible output.
func NewBinaryMask(rng *rand.Rand) *BinaryMask {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	m := &BinaryMask{
		pix: image.NewGray(image.Rect(0, 0, MaskSize, MaskSize)),
		rng: rng,
	}
	m.Clear()
	return m
}

// Value returns the mask value at (x, y), or MaskIntact outside the mask.
func (m *BinaryMask) Value(x, y int) uint8 {
	if !(image.Point{x, y}.In(m.pix.Rect)) {
		return MaskIntact
	}
	return m.pix.Pix[m.pix.PixOffset(x, y)]
}

// Gray returns the underlying buffer.
func (m *BinaryMask) Gray() *image.Gray { return m.pix }

// Clear resets every pixel to MaskIntact.
func (m *BinaryMask) Clear() {
	for i := range m.pix.Pix {
		m.pix.Pix[i] = MaskIntact
	}
}

// Invert swaps intact and broken pixels.
func (m *BinaryMask) Invert() {
	for i, v := range m.pix.Pix {
		m.pix.Pix[i] = 255 - v
	}
}

// Stroke applies brush b at (x, y). Centers outside the mask are ignored and
// return false.
func (m *BinaryMask) Stroke(b MaskBrush, x, y int) bool {
	if x < 0 || y < 0 || x >= MaskSize || y >= MaskSize {
		return false
	}
	r := max(1, b.Radius)
	switch b.Kind {
	case Spray:
		m.spray(x, y, r)
	default:
		m.disk(x, y, r)
	}
	return true
}

func (m *BinaryMask) disk(cx, cy, r int) {
	raster.ForEachInDisk(MaskSize, MaskSize, float64(cx), float64(cy), float64(r), func(x, y int) {
		m.pix.Pix[m.pix.PixOffset(x, y)] = MaskBroken
	})
}

// spray draws max(10, r) candidate offsets uniformly from [-r, r]², keeps the
// ones inside the disk and stamps a dot of radius 1..3 at each.
func (m *BinaryMask) spray(cx, cy, r int) {
	for range max(minSpraySamples, r) {
		dx := m.rng.IntN(2*r+1) - r
		dy := m.rng.IntN(2*r+1) - r
		if dx*dx+dy*dy > r*r {
			continue
		}
		px, py := cx+dx, cy+dy
		if px < 0 || py < 0 || px >= MaskSize || py >= MaskSize {
			continue
		}
		m.disk(px, py, 1+m.rng.IntN(maxSprayDot))
	}
}

// Export returns a transparent MaskSize×MaskSize image with opaque black
// wherever the mask is broken.
func (m *BinaryMask) Export() *raster.Image {
	out := raster.MustNew(MaskSize, MaskSize)
	for y := 0; y < MaskSize; y++ {
		for x := 0; x < MaskSize; x++ {
			out.Set(x, y, color.NRGBA{A: 255 - m.pix.Pix[m.pix.PixOffset(x, y)]})
		}
	}
	return out
}

// Render draws the broken pixels in black over background, or over white when
// background is nil. The background is resized to the mask when needed.
func (m *BinaryMask) Render(background *raster.Image) (*raster.Image, error) {
	var bg *raster.Image
	switch {
	case background == nil:
		bg = raster.MustNew(MaskSize, MaskSize)
		bg.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	case background.Width() != MaskSize || background.Height() != MaskSize:
		var err error
		if bg, err = LoadReference(background); err != nil {
			return nil, err
		}
	default:
		bg = background
	}
	return raster.CompositeOver(m.Export(), bg, 0, 0), nil
}

// LoadReference returns img resized to the mask size, for use as the Render
// background.
func LoadReference(img *raster.Image) (*raster.Image, error) {
	if img == nil {
		return nil, raster.ErrEmpty
	}
	return img.Resize(MaskSize, MaskSize)
}
