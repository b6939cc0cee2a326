package viewport

import (
	"math"
	"testing"
)

func TestNew_DefaultsMissingViewport(t *testing.T) {
	m := New(0, 0, 400, 200)
	vw, vh := m.ViewportSize()
	if vw != DefaultSize || vh != DefaultSize {
		t.Fatalf("expected %dx%d viewport, got %dx%d", DefaultSize, DefaultSize, vw, vh)
	}
	if m.Scale() != 2 {
		t.Errorf("expected scale 2, got %v", m.Scale())
	}
}

func TestScale_FitInside(t *testing.T) {
	tests := []struct {
		name           string
		vw, vh, w, h   int
		wantScale      float64
		wantDW, wantDH int
	}{
		{"wide viewport", 1000, 500, 100, 100, 5, 500, 500},
		{"tall raster", 800, 800, 400, 1600, 0.5, 200, 800},
		{"exact fit", 640, 480, 640, 480, 1, 640, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.vw, tt.vh, tt.w, tt.h)
			if m.Scale() != tt.wantScale {
				t.Errorf("scale = %v, want %v", m.Scale(), tt.wantScale)
			}
			dw, dh := m.DisplaySize()
			if dw != tt.wantDW || dh != tt.wantDH {
				t.Errorf("display = %dx%d, want %dx%d", dw, dh, tt.wantDW, tt.wantDH)
			}
		})
	}
}

func TestToViewport_Center(t *testing.T) {
	m := New(800, 600, 200, 100)
	vx, vy := m.ToViewport(100, 50)
	if vx != 400 || vy != 300 {
		t.Errorf("raster center should map to viewport center, got (%v,%v)", vx, vy)
	}
}

func TestRoundTrip_RasterViewportRaster(t *testing.T) {
	sizes := [][4]int{
		{800, 800, 200, 200},
		{640, 480, 1920, 1080},
		{300, 900, 57, 311},
		{1, 1, 64, 64},
		{1024, 768, 7, 3},
	}
	for _, s := range sizes {
		m := New(s[0], s[1], s[2], s[3])
		for rx := 0; rx < s[2]; rx += max(1, s[2]/17) {
			for ry := 0; ry < s[3]; ry += max(1, s[3]/13) {
				vx, vy := m.ToViewport(float64(rx), float64(ry))
				bx, by := m.ToRaster(vx, vy)
				if abs(bx-rx) > 1 || abs(by-ry) > 1 {
					t.Fatalf("sizes %v: (%d,%d) -> (%v,%v) -> (%d,%d)", s, rx, ry, vx, vy, bx, by)
				}
			}
		}
	}
}

func TestRoundTrip_ViewportRasterViewport(t *testing.T) {
	sizes := [][4]int{
		{800, 800, 200, 200},
		{640, 480, 1920, 1080},
		{500, 500, 500, 500},
	}
	for _, s := range sizes {
		m := New(s[0], s[1], s[2], s[3])
		// One raster pixel spans Scale() viewport pixels.
		tol := math.Max(1, m.Scale())
		for vx := 0; vx < s[0]; vx += 7 {
			for vy := 0; vy < s[1]; vy += 11 {
				rx, ry := m.ToRaster(float64(vx), float64(vy))
				bx, by := m.ToViewport(float64(rx), float64(ry))
				if math.Abs(bx-float64(vx)) > tol || math.Abs(by-float64(vy)) > tol {
					t.Fatalf("sizes %v: (%d,%d) -> (%d,%d) -> (%v,%v)", s, vx, vy, rx, ry, bx, by)
				}
			}
		}
	}
}

func TestClampCenter(t *testing.T) {
	m := New(800, 800, 200, 100)
	tests := []struct {
		name         string
		x, y, r      int
		wantX, wantY int
	}{
		{"inside", 100, 50, 20, 100, 50},
		{"left/top", -30, 0, 20, 20, 20},
		{"right/bottom", 500, 99, 20, 180, 80},
		{"radius larger than raster", 10, 10, 80, 80, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := m.ClampCenter(tt.x, tt.y, tt.r)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("got (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
