// Package raster provides the in-memory RGBA buffer all orb edits operate on.
//
// Pixels are stored as 8-bit straight (non-premultiplied) RGBA. Every
// operation either returns a freshly allocated Image or mutates its receiver;
// no call reads and writes the same buffer.
package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrInvalidSize is returned when a width or height is not positive.
var ErrInvalidSize = errors.New("raster: width and height must be positive")

// Image is an RGBA8 straight-alpha raster with its origin at (0,0).
type Image struct {
	pix *image.NRGBA
}

// New allocates a fully transparent image.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Image{pix: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

// MustNew is like New but panics on invalid dimensions.
// Intended for fixed sizes known at compile time.
func MustNew(width, height int) *Image {
	img, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return img
}

// Filled allocates an image with every pixel set to c.
func Filled(width, height int, c color.NRGBA) (*Image, error) {
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}
	img.Fill(c)
	return img, nil
}

// FromImage converts any decoded image into a straight-alpha raster.
// The result always starts at (0,0) regardless of src bounds. NRGBA sources
// are copied byte for byte so RGB under zero alpha survives.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	img, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	if n, ok := src.(*image.NRGBA); ok {
		copyRows(img.pix, n, b)
		return img, nil
	}
	draw.Copy(img.pix, image.Point{}, src, b, draw.Src, nil)
	return img, nil
}

// copyRows copies rectangle r of src to the origin of dst.
func copyRows(dst, src *image.NRGBA, r image.Rectangle) {
	n := 4 * r.Dx()
	for y := 0; y < r.Dy(); y++ {
		si := src.PixOffset(r.Min.X, r.Min.Y+y)
		copy(dst.Pix[dst.PixOffset(0, y):], src.Pix[si:si+n])
	}
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.pix.Rect.Dx() }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.pix.Rect.Dy() }

// Size returns width and height.
func (m *Image) Size() (int, int) { return m.Width(), m.Height() }

// Bounds returns the image rectangle.
func (m *Image) Bounds() image.Rectangle { return m.pix.Rect }

// Contains reports whether (x, y) lies inside the raster.
func (m *Image) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width() && y < m.Height()
}

// NRGBA exposes the backing buffer for encoders and drawing adapters.
// Callers must not retain it across operations that replace the image.
func (m *Image) NRGBA() *image.NRGBA { return m.pix }

// At returns the pixel at (x, y). Outside the raster it is transparent.
func (m *Image) At(x, y int) color.NRGBA {
	if !m.Contains(x, y) {
		return color.NRGBA{}
	}
	i := m.pix.PixOffset(x, y)
	p := m.pix.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes the pixel at (x, y). Outside the raster it is a no-op.
func (m *Image) Set(x, y int, c color.NRGBA) {
	if !m.Contains(x, y) {
		return
	}
	i := m.pix.PixOffset(x, y)
	p := m.pix.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Alpha returns only the alpha channel at (x, y).
func (m *Image) Alpha(x, y int) uint8 {
	if !m.Contains(x, y) {
		return 0
	}
	return m.pix.Pix[m.pix.PixOffset(x, y)+3]
}

// SetAlpha replaces the alpha channel at (x, y), leaving RGB untouched.
func (m *Image) SetAlpha(x, y int, a uint8) {
	if !m.Contains(x, y) {
		return
	}
	m.pix.Pix[m.pix.PixOffset(x, y)+3] = a
}

// Fill sets every pixel to c.
func (m *Image) Fill(c color.NRGBA) {
	p := m.pix.Pix
	for i := 0; i < len(p); i += 4 {
		p[i], p[i+1], p[i+2], p[i+3] = c.R, c.G, c.B, c.A
	}
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	dst := image.NewNRGBA(m.pix.Rect)
	copy(dst.Pix, m.pix.Pix)
	return &Image{pix: dst}
}

// Equal reports whether both images have the same size and identical bytes.
func (m *Image) Equal(other *Image) bool {
	if other == nil || m.pix.Rect != other.pix.Rect {
		return false
	}
	return bytes.Equal(m.pix.Pix, other.pix.Pix)
}
