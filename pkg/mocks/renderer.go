package mocks

import (
	"image"
	"image/color"

	"github.com/user/orbsmith/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image

	// Canvases records every canvas handed out by the default CreateCanvas.
	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{width: width, height: height}
	m.Canvases = append(m.Canvases, c)
	return c
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewNRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// CircleCall records one DrawCircle or FillCircle call.
type CircleCall struct {
	CX, CY, Radius float64
	Color          color.Color
	StrokeWidth    float64
	Filled         bool
}

// RectCall records one DrawRect call.
type RectCall struct {
	Rect  image.Rectangle
	Color color.Color
}

// Canvas is a mock implementation of ports.Canvas. It draws nothing and
// records circle, rectangle and text calls.
type Canvas struct {
	width  int
	height int
	img    *image.NRGBA

	Circles []CircleCall
	Rects   []RectCall
	Texts   []string
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {}

func (m *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {}

func (m *Canvas) DrawCircle(cx, cy, radius float64, c color.Color, strokeWidth float64) {
	m.Circles = append(m.Circles, CircleCall{CX: cx, CY: cy, Radius: radius, Color: c, StrokeWidth: strokeWidth})
}

func (m *Canvas) FillCircle(cx, cy, radius float64, c color.Color) {
	m.Circles = append(m.Circles, CircleCall{CX: cx, CY: cy, Radius: radius, Color: c, Filled: true})
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.Rects = append(m.Rects, RectCall{Rect: image.Rect(x, y, x+w, y+h), Color: c})
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.Texts = append(m.Texts, text)
}

func (m *Canvas) ToImage() image.Image {
	if m.img != nil {
		return m.img
	}
	return image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
