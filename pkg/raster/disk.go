package raster

import (
	"image/color"
	"math"
)

// ForEachInDisk calls fn for every pixel of a width×height grid whose offset
// from (cx, cy) satisfies dx²+dy² ≤ r². The boundary is inclusive and pixels
// outside the grid are skipped.
func ForEachInDisk(width, height int, cx, cy, r float64, fn func(x, y int)) {
	if r < 0 {
		return
	}
	x0 := max(0, int(math.Ceil(cx-r)))
	x1 := min(width-1, int(math.Floor(cx+r)))
	y0 := max(0, int(math.Ceil(cy-r)))
	y1 := min(height-1, int(math.Floor(cy+r)))
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= r2 {
				fn(x, y)
			}
		}
	}
}

// FillDisk sets every pixel of the disk to c.
func (m *Image) FillDisk(cx, cy, r int, c color.NRGBA) {
	w, h := m.Size()
	ForEachInDisk(w, h, float64(cx), float64(cy), float64(r), func(x, y int) {
		m.Set(x, y, c)
	})
}

// ClearDiskAlpha zeroes the alpha of every pixel of the disk, keeping RGB.
func (m *Image) ClearDiskAlpha(cx, cy, r int) {
	w, h := m.Size()
	ForEachInDisk(w, h, float64(cx), float64(cy), float64(r), func(x, y int) {
		m.SetAlpha(x, y, 0)
	})
}
