package circle

import (
	"image"
	"image/color"

	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
	"github.com/user/orbsmith/pkg/viewport"
)

const (
	// MaskInside is the mask value for pixels kept by a crop.
	MaskInside uint8 = 255
	// MaskOutside is the mask value for pixels cleared by a crop.
	MaskOutside uint8 = 0

	previewStroke = 3
)

// ComputeMask returns a w×h single-channel mask that is 255 inside the
// circle (boundary inclusive) and 0 elsewhere.
func ComputeMask(w, h int, s Spec) *image.Alpha {
	return diskMask(w, h, float64(s.CenterX), float64(s.CenterY), float64(s.Radius))
}

// InscribedMask returns a side×side mask of the disk touching all four edges,
// the fill produced by an ellipse with bounding box (0,0)-(side-1,side-1).
func InscribedMask(side int) *image.Alpha {
	c := float64(side-1) / 2
	return diskMask(side, side, c, c, float64(side)/2)
}

func diskMask(w, h int, cx, cy, r float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	raster.ForEachInDisk(w, h, cx, cy, r, func(x, y int) {
		mask.Pix[mask.PixOffset(x, y)] = MaskInside
	})
	return mask
}

// ApplyCrop returns a same-size copy of img holding only the pixels inside
// the circle; everything else is transparent black. img is not modified.
func ApplyCrop(img *raster.Image, s Spec) (*raster.Image, error) {
	if img == nil {
		return nil, raster.ErrEmpty
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	w, h := img.Size()
	return ApplyMask(img, ComputeMask(w, h, s)), nil
}

// ApplyMask copies the pixels of img where mask is MaskInside into a new
// transparent image of the same size. Mask pixels outside img are ignored.
func ApplyMask(img *raster.Image, mask *image.Alpha) *raster.Image {
	w, h := img.Size()
	out := raster.MustNew(w, h)
	area := mask.Bounds().Intersect(img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if mask.Pix[mask.PixOffset(x, y)] == MaskInside {
				out.Set(x, y, img.At(x, y))
			}
		}
	}
	return out
}

// Preview returns a copy of img scaled to the mapper's display size with a
// white circle outline drawn where the crop would land. img is not modified.
func Preview(img *raster.Image, s Spec, m viewport.Mapper, renderer ports.Renderer) (*raster.Image, error) {
	if img == nil {
		return nil, raster.ErrEmpty
	}
	dw, dh := m.DisplaySize()
	scale := m.Scale()
	canvas := renderer.CreateCanvas(dw, dh, color.Transparent)
	canvas.DrawImageScaled(img.NRGBA(), 0, 0, dw, dh)
	canvas.DrawCircle(
		float64(s.CenterX)*scale,
		float64(s.CenterY)*scale,
		float64(s.Radius)*scale,
		color.White,
		previewStroke,
	)
	return raster.FromImage(canvas.ToImage())
}
