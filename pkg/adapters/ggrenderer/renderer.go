// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"

	// Registered for image.Decode so loaded sources may be BMP or WebP.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}
}

// DecodeImage decodes image data, detecting PNG, JPEG, BMP or WebP.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image with the raster package's Lanczos filter.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	return resize(img, width, height)
}

// resize scales through raster.Resize so canvas drawing and the engine share
// one filter. Invalid sizes yield an empty image of the requested bounds.
func resize(img image.Image, width, height int) image.Image {
	src, err := raster.FromImage(img)
	if err == nil {
		var dst *raster.Image
		if dst, err = src.Resize(width, height); err == nil {
			return dst.NRGBA()
		}
	}
	return image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawImageScaled draws an image scaled to the specified dimensions.
func (c *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		img = resize(img, width, height)
	}
	c.dc.DrawImage(img, x, y)
}

// DrawCircle strokes a circle outline centered on the given radius.
func (c *Canvas) DrawCircle(cx, cy, radius float64, col color.Color, strokeWidth float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.DrawCircle(cx, cy, radius)
	c.dc.Stroke()
}

// FillCircle fills a disk.
func (c *Canvas) FillCircle(cx, cy, radius float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(cx, cy, radius)
	c.dc.Fill()
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawText draws text at the specified position.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	c.dc.SetColor(style.Color)

	if style.FontPath != "" {
		// Keep the current face when the font cannot be loaded.
		_ = c.dc.LoadFontFace(style.FontPath, style.FontSize)
	}

	ax := 0.0
	switch style.Align {
	case ports.AlignCenter:
		ax = 0.5
	case ports.AlignRight:
		ax = 1.0
	}

	c.dc.DrawStringAnchored(text, float64(x), float64(y), ax, 0.5)
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
