package raster

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ExportSize is the side length of orb sprites written for the game.
const ExportSize = 64

// ErrEmptyCrop is returned when a crop rectangle does not overlap the image.
var ErrEmptyCrop = errors.New("raster: crop rectangle is empty")

// Lanczos3 is a three-lobe windowed sinc filter. draw.Kernel widens its
// support when shrinking, so downscales average the whole source footprint.
var Lanczos3 = &draw.Kernel{Support: 3, At: lanczos3}

func lanczos3(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t < 1e-8 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}

// Crop returns a copy of the part of m inside r.
func (m *Image) Crop(r image.Rectangle) (*Image, error) {
	r = r.Intersect(m.Bounds())
	if r.Empty() {
		return nil, ErrEmptyCrop
	}
	dst := MustNew(r.Dx(), r.Dy())
	copyRows(dst.pix, m.pix, r)
	return dst, nil
}

// Resize returns m scaled to width×height with the Lanczos3 filter.
func (m *Image) Resize(width, height int) (*Image, error) {
	dst, err := New(width, height)
	if err != nil {
		return nil, err
	}
	Lanczos3.Scale(dst.pix, dst.pix.Rect, m.pix, m.pix.Rect, draw.Src, nil)
	return dst, nil
}

// ResizeTo64 returns the 64×64 export version of m.
func (m *Image) ResizeTo64() *Image {
	dst, _ := m.Resize(ExportSize, ExportSize)
	return dst
}

// FlipHorizontal returns a mirror image across the vertical axis.
func (m *Image) FlipHorizontal() *Image {
	w, h := m.Size()
	dst := MustNew(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(w-1-x, y, m.At(x, y))
		}
	}
	return dst
}

// FlipVertical returns a mirror image across the horizontal axis.
func (m *Image) FlipVertical() *Image {
	w, h := m.Size()
	dst := MustNew(w, h)
	for y := 0; y < h; y++ {
		srcRow := m.pix.Pix[m.pix.PixOffset(0, y) : m.pix.PixOffset(0, y)+4*w]
		copy(dst.pix.Pix[dst.pix.PixOffset(0, h-1-y):], srcRow)
	}
	return dst
}

// Rotate turns m counter-clockwise by quarterTurns×90° about its center.
// The canvas keeps its size: content rotated off the raster is clipped and
// uncovered pixels are transparent.
func (m *Image) Rotate(quarterTurns int) *Image {
	k := ((quarterTurns % 4) + 4) % 4
	if k == 0 {
		return m.Clone()
	}
	w, h := m.Size()
	cx, cy := float64(w)/2, float64(h)/2
	dst := MustNew(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x) + 0.5 - cx
			v := float64(y) + 0.5 - cy
			var su, sv float64
			switch k {
			case 1:
				su, sv = -v, u
			case 2:
				su, sv = -u, -v
			case 3:
				su, sv = v, -u
			}
			sx := int(math.Floor(cx + su))
			sy := int(math.Floor(cy + sv))
			if m.Contains(sx, sy) {
				dst.Set(x, y, m.At(sx, sy))
			}
		}
	}
	return dst
}

// CompositeOver returns a copy of bg with fg drawn over it, fg's top-left
// corner at (dx, dy). Blending is straight-alpha Porter-Duff "over":
//
//	out_a = fa + ba·(1-fa)
//	out_c = (fc·fa + bc·ba·(1-fa)) / out_a
//
// which reduces to fc·fa + bc·(1-fa) over an opaque background.
func CompositeOver(fg, bg *Image, dx, dy int) *Image {
	out := bg.Clone()
	area := fg.Bounds().Add(image.Pt(dx, dy)).Intersect(out.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			fi := fg.pix.PixOffset(x-dx, y-dy)
			oi := out.pix.PixOffset(x, y)
			blendOver(out.pix.Pix[oi:oi+4:oi+4], fg.pix.Pix[fi:fi+4:fi+4])
		}
	}
	return out
}

// blendOver writes src over dst in place. Both are 4-byte NRGBA pixels.
func blendOver(dst, src []uint8) {
	fa := float64(src[3]) / 255
	if fa == 0 {
		return
	}
	if fa == 1 {
		copy(dst, src)
		return
	}
	ba := float64(dst[3]) / 255
	outA := fa + ba*(1-fa)
	for c := 0; c < 3; c++ {
		v := (float64(src[c])*fa + float64(dst[c])*ba*(1-fa)) / outA
		dst[c] = clampByte(v)
	}
	dst[3] = clampByte(outA * 255)
}

func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
