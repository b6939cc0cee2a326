// Package viewport converts between display coordinates and source-raster
// coordinates under a uniform "fit inside, centered" scale.
package viewport

import "math"

// DefaultSize substitutes for a viewport dimension the host has not reported
// yet (before first layout).
const DefaultSize = 800

// Mapper maps points between a VW×VH viewport and a W×H raster.
// The raster is displayed at scale s = min(VW/W, VH/H), centered.
type Mapper struct {
	vw, vh float64
	w, h   float64
	scale  float64
}

// New creates a Mapper. Viewport dimensions ≤ 0 are replaced by DefaultSize;
// raster dimensions ≤ 0 are treated as 1 so the scale is always finite.
func New(viewportWidth, viewportHeight, rasterWidth, rasterHeight int) Mapper {
	if viewportWidth <= 0 {
		viewportWidth = DefaultSize
	}
	if viewportHeight <= 0 {
		viewportHeight = DefaultSize
	}
	if rasterWidth <= 0 {
		rasterWidth = 1
	}
	if rasterHeight <= 0 {
		rasterHeight = 1
	}
	m := Mapper{
		vw: float64(viewportWidth),
		vh: float64(viewportHeight),
		w:  float64(rasterWidth),
		h:  float64(rasterHeight),
	}
	m.scale = math.Min(m.vw/m.w, m.vh/m.h)
	return m
}

// Scale returns the raster-to-viewport scale factor.
func (m Mapper) Scale() float64 { return m.scale }

// ViewportSize returns the effective viewport size after defaulting.
func (m Mapper) ViewportSize() (int, int) { return int(m.vw), int(m.vh) }

// RasterSize returns the raster dimensions the mapper was built for.
func (m Mapper) RasterSize() (int, int) { return int(m.w), int(m.h) }

// DisplaySize returns the on-screen size of the scaled raster, at least 1×1.
func (m Mapper) DisplaySize() (int, int) {
	dw := int(math.Round(m.w * m.scale))
	dh := int(math.Round(m.h * m.scale))
	return max(dw, 1), max(dh, 1)
}

// ToViewport maps a raster point to viewport coordinates.
func (m Mapper) ToViewport(rx, ry float64) (float64, float64) {
	vx := (rx-m.w/2)*m.scale + m.vw/2
	vy := (ry-m.h/2)*m.scale + m.vh/2
	return vx, vy
}

// ToRaster maps a viewport point to raster coordinates, truncated toward zero.
// The result may lie outside the raster; callers decide whether to clamp or
// ignore it.
func (m Mapper) ToRaster(vx, vy float64) (int, int) {
	rx := (vx-m.vw/2)/m.scale + m.w/2
	ry := (vy-m.vh/2)/m.scale + m.h/2
	return int(math.Trunc(rx)), int(math.Trunc(ry))
}

// ClampCenter clamps a circle center so a circle of the given radius stays
// inside the raster: x ∈ [r, W-r], y ∈ [r, H-r]. When the circle is wider
// than the raster the lower bound wins.
func (m Mapper) ClampCenter(x, y, radius int) (int, int) {
	w, h := m.RasterSize()
	return clamp(x, radius, w-radius), clamp(y, radius, h-radius)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
