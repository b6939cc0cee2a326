package sheet

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/orbsmith/pkg/adapters/ggrenderer"
	"github.com/user/orbsmith/pkg/adapters/logger"
	"github.com/user/orbsmith/pkg/mocks"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

func writeOrb(t *testing.T, fs *mocks.FileSystem, path string, c color.NRGBA) {
	t.Helper()
	img, err := raster.Filled(64, 64, c)
	if err != nil {
		t.Fatal(err)
	}
	data, err := ggrenderer.New().EncodeImage(img.NRGBA(), ports.FormatPNG, 0)
	if err != nil {
		t.Fatal(err)
	}
	fs.WriteFile(path, data)
}

func TestStage_Size(t *testing.T) {
	stage := New(mocks.NewFileSystem(), &mocks.Renderer{}, logger.NewNoop(), DefaultOptions())

	w, h := stage.Size(3)
	// 10 + 3*64 + 2*10 + 10
	if w != 232 {
		t.Errorf("width = %d, want 232", w)
	}
	if h != 10+64+10+labelHeight {
		t.Errorf("height = %d", h)
	}

	opts := DefaultOptions()
	opts.Labels = false
	if _, h := New(mocks.NewFileSystem(), &mocks.Renderer{}, logger.NewNoop(), opts).Size(1); h != 84 {
		t.Errorf("height without labels = %d, want 84", h)
	}
}

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	writeOrb(t, fs, "full.png", color.NRGBA{R: 255, A: 255})
	writeOrb(t, fs, "low.png", color.NRGBA{B: 255, A: 255})

	opts := DefaultOptions()
	opts.Labels = false
	renderer := ggrenderer.New()
	stage := New(fs, renderer, logger.NewNoop(), opts)

	result, err := stage.Execute(context.Background(), Input{
		Paths:      []string{"full.png", "low.png"},
		OutputPath: "sheet.png",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Count != 2 || result.Width != 158 || result.Height != 84 {
		t.Errorf("unexpected result: %+v", result)
	}

	data, ok := fs.GetFile("sheet.png")
	if !ok {
		t.Fatal("sheet not written")
	}
	decoded, err := renderer.DecodeImage(data)
	if err != nil {
		t.Fatal(err)
	}
	img, _ := raster.FromImage(decoded)
	if got := img.At(40, 40); got.R != 255 || got.B != 0 {
		t.Errorf("first cell = %v, want red", got)
	}
	if got := img.At(10+64+10+30, 40); got.B != 255 || got.R != 0 {
		t.Errorf("second cell = %v, want blue", got)
	}
	if got := img.At(2, 2); got != (color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}) {
		t.Errorf("padding = %v, want background", got)
	}
}

func TestStage_Execute_Labels(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{}
	stage := New(fs, renderer, logger.NewNoop(), DefaultOptions())

	fs.WriteFile("a.png", []byte{1})
	fs.WriteFile("b.png", []byte{2})

	_, err := stage.Execute(context.Background(), Input{
		Paths:      []string{"a.png", "b.png"},
		Labels:     []string{"Full"},
		OutputPath: "sheet.png",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(renderer.Canvases) != 1 {
		t.Fatalf("expected 1 canvas, got %d", len(renderer.Canvases))
	}
	texts := renderer.Canvases[0].Texts
	if len(texts) != 2 || texts[0] != "Full" || texts[1] != "b.png" {
		t.Errorf("labels = %v", texts)
	}
}

func TestStage_Execute_Errors(t *testing.T) {
	stage := New(mocks.NewFileSystem(), &mocks.Renderer{}, logger.NewNoop(), DefaultOptions())

	if _, err := stage.Execute(context.Background(), Input{OutputPath: "x.png"}); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := stage.Execute(context.Background(), Input{Paths: []string{"missing.png"}, OutputPath: "x.png"}); err == nil {
		t.Error("expected error for missing file")
	}

	renderer := &mocks.Renderer{
		DecodeImageFunc: func(data []byte) (image.Image, error) { return nil, errors.New("bad png") },
	}
	fs := mocks.NewFileSystem()
	fs.WriteFile("a.png", []byte{1})
	stage = New(fs, renderer, logger.NewNoop(), DefaultOptions())
	if _, err := stage.Execute(context.Background(), Input{Paths: []string{"a.png"}, OutputPath: "x.png"}); err == nil {
		t.Error("expected decode error")
	}
}

func TestStage_Compose_Cells(t *testing.T) {
	renderer := &mocks.Renderer{}
	var resized []image.Point
	renderer.ResizeImageFunc = func(img image.Image, w, h int) image.Image {
		resized = append(resized, img.Bounds().Size())
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	stage := New(mocks.NewFileSystem(), renderer, logger.NewNoop(), DefaultOptions())

	images := []*raster.Image{raster.MustNew(64, 64), raster.MustNew(100, 50)}
	if _, err := stage.Compose(images, nil); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	// Only the orb that is not already cell-sized is resized.
	if len(resized) != 1 || resized[0] != image.Pt(100, 50) {
		t.Errorf("resized = %v, want one 100x50 source", resized)
	}

	rects := renderer.Canvases[0].Rects
	if len(rects) != 3 {
		t.Fatalf("expected background and 2 cell rects, got %d", len(rects))
	}
	w, h := stage.Size(2)
	if rects[0].Rect != image.Rect(0, 0, w, h) {
		t.Errorf("background rect = %v", rects[0].Rect)
	}
	if want := image.Rect(84, 10, 148, 74); rects[2].Rect != want {
		t.Errorf("second cell rect = %v, want %v", rects[2].Rect, want)
	}
}

func TestStage_Execute_Format(t *testing.T) {
	tests := []struct {
		path string
		want ports.ImageFormat
	}{
		{"sheet.png", ports.FormatPNG},
		{"sheet.jpg", ports.FormatJPEG},
		{"SHEET.JPEG", ports.FormatJPEG},
		{"sheet", ports.FormatPNG},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			fs.WriteFile("a.png", []byte{1})
			var got ports.ImageFormat = -1
			renderer := &mocks.Renderer{
				EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
					got = format
					return []byte{0}, nil
				},
			}
			stage := New(fs, renderer, logger.NewNoop(), DefaultOptions())
			if _, err := stage.Execute(context.Background(), Input{Paths: []string{"a.png"}, OutputPath: tt.path}); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("format = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStage_Execute_JPEG(t *testing.T) {
	fs := mocks.NewFileSystem()
	writeOrb(t, fs, "full.png", color.NRGBA{G: 255, A: 255})
	renderer := ggrenderer.New()
	stage := New(fs, renderer, logger.NewNoop(), DefaultOptions())

	if _, err := stage.Execute(context.Background(), Input{Paths: []string{"full.png"}, OutputPath: "sheet.jpg"}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	data, _ := fs.GetFile("sheet.jpg")
	if len(data) < 2 || data[0] != 0xff || data[1] != 0xd8 {
		t.Fatal("expected JPEG data")
	}
	decoded, err := renderer.DecodeImage(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, g, _, _ := decoded.At(40, 40).RGBA(); g>>8 < 200 {
		t.Errorf("cell should stay green after JPEG encoding, g=%d", g>>8)
	}
}
