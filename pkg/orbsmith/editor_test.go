package orbsmith

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/orbsmith/pkg/adapters/ggrenderer"
	"github.com/user/orbsmith/pkg/adapters/logger"
	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/mocks"
	"github.com/user/orbsmith/pkg/paint"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
	"github.com/user/orbsmith/pkg/ring"
)

var red = color.NRGBA{R: 255, A: 255}

func newEditor(t *testing.T, w, h int) (*Editor, *mocks.FileSystem) {
	t.Helper()
	fs := mocks.NewFileSystem()
	e := NewEditor(ggrenderer.New(), fs, logger.NewNoop())
	if w > 0 {
		img, err := raster.Filled(w, h, red)
		if err != nil {
			t.Fatal(err)
		}
		e.SetImage(img)
	}
	return e, fs
}

func TestEditor_NoImage(t *testing.T) {
	e, _ := newEditor(t, 0, 0)

	if _, _, err := e.MapViewportToRaster(1, 1); !errors.Is(err, ErrNoImage) {
		t.Errorf("MapViewportToRaster: expected ErrNoImage, got %v", err)
	}
	if _, err := e.PaintStroke(paint.NewTool(), 1, 1); !errors.Is(err, ErrNoImage) {
		t.Errorf("PaintStroke: expected ErrNoImage, got %v", err)
	}
	if _, err := e.BuildRingComposite(ring.DefaultStyle()); !errors.Is(err, ErrNoImage) {
		t.Errorf("BuildRingComposite: expected ErrNoImage, got %v", err)
	}
	if err := e.ApplyCircleCrop(circle.Spec{CenterX: 1, CenterY: 1, Radius: 1}); !errors.Is(err, ErrNoImage) {
		t.Errorf("ApplyCircleCrop: expected ErrNoImage, got %v", err)
	}
	if _, err := e.ResizeTo64(); !errors.Is(err, ErrNoImage) {
		t.Errorf("ResizeTo64: expected ErrNoImage, got %v", err)
	}
	if _, err := e.ApplyAlphaTransplant(raster.MustNew(2, 2)); !errors.Is(err, ErrNoImage) {
		t.Errorf("ApplyAlphaTransplant: expected ErrNoImage, got %v", err)
	}
}

func TestEditor_TakeImage(t *testing.T) {
	e, _ := newEditor(t, 20, 10)
	img, err := e.TakeImage()
	if err != nil {
		t.Fatalf("TakeImage failed: %v", err)
	}
	if img.Width() != 20 || img.Height() != 10 {
		t.Errorf("taken image = %dx%d, want 20x10", img.Width(), img.Height())
	}
	if _, err := e.Image(); !errors.Is(err, ErrNoImage) {
		t.Errorf("editor should be empty after TakeImage, got %v", err)
	}
	if _, err := e.TakeImage(); !errors.Is(err, ErrNoImage) {
		t.Errorf("second TakeImage: expected ErrNoImage, got %v", err)
	}
}

func TestEditor_Mapping(t *testing.T) {
	e, _ := newEditor(t, 200, 100)
	e.SetViewport(400, 400)

	vx, vy, err := e.MapRasterToViewport(100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if vx != 200 || vy != 200 {
		t.Errorf("expected (200,200), got (%v,%v)", vx, vy)
	}
	rx, ry, err := e.MapViewportToRaster(vx, vy)
	if err != nil {
		t.Fatal(err)
	}
	if rx != 100 || ry != 50 {
		t.Errorf("round trip gave (%d,%d)", rx, ry)
	}
}

func TestEditor_ApplyCircleCrop(t *testing.T) {
	tests := []struct {
		name string
		spec circle.Spec
		want circle.Spec
	}{
		{"inside", circle.Spec{CenterX: 100, CenterY: 100, Radius: 50}, circle.Spec{CenterX: 100, CenterY: 100, Radius: 50}},
		{"clamped", circle.Spec{CenterX: 10, CenterY: 10, Radius: 50}, circle.Spec{CenterX: 50, CenterY: 50, Radius: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEditor(t, 200, 200)
			if err := e.ApplyCircleCrop(tt.spec); err != nil {
				t.Fatalf("ApplyCircleCrop failed: %v", err)
			}
			got, ok := e.PriorCrop().Get()
			if !ok || got != tt.want {
				t.Fatalf("prior = %+v (%v), want %+v", got, ok, tt.want)
			}
			img, _ := e.Image()
			if img.Alpha(tt.want.CenterX, tt.want.CenterY) != 255 {
				t.Error("center should stay opaque")
			}
			if img.Alpha(199, 199) != 0 {
				t.Error("corner should be transparent")
			}
		})
	}
}

func TestEditor_ApplyCircleCrop_SmallRadius(t *testing.T) {
	e, _ := newEditor(t, 30, 30)
	want := circle.Spec{CenterX: 15, CenterY: 15, Radius: 5}
	if err := e.ApplyCircleCrop(want); err != nil {
		t.Fatalf("ApplyCircleCrop failed: %v", err)
	}
	if got, _ := e.PriorCrop().Get(); got != want {
		t.Errorf("prior = %+v, want %+v", got, want)
	}

	img, _ := e.Image()
	if img.Alpha(15, 15) != 255 || img.Alpha(15, 20) != 255 {
		t.Error("pixels within the radius should stay opaque")
	}
	if a := img.Alpha(15, 22); a != 0 {
		t.Errorf("pixel 7px from the center should be cleared, alpha %d", a)
	}
}

func TestEditor_ApplyCircleCrop_InvalidRadius(t *testing.T) {
	e, _ := newEditor(t, 30, 30)
	if err := e.ApplyCircleCrop(circle.Spec{CenterX: 15, CenterY: 15}); !errors.Is(err, circle.ErrInvalidRadius) {
		t.Errorf("expected ErrInvalidRadius, got %v", err)
	}
	img, _ := e.Image()
	if img.Alpha(0, 0) != 255 {
		t.Error("image should be unchanged after a rejected crop")
	}
}

func TestEditor_InteractiveCrop(t *testing.T) {
	e, _ := newEditor(t, 200, 200)
	e.SetViewport(400, 400)

	if err := e.MoveCircle(10, 10); !errors.Is(err, circle.ErrNotActive) {
		t.Errorf("expected ErrNotActive before start, got %v", err)
	}
	if err := e.SetCircleRadius(40); !errors.Is(err, circle.ErrNotActive) {
		t.Errorf("SetCircleRadius: expected ErrNotActive before start, got %v", err)
	}
	if err := e.NudgeCircle(1, 1); !errors.Is(err, circle.ErrNotActive) {
		t.Errorf("NudgeCircle: expected ErrNotActive before start, got %v", err)
	}
	if err := e.StartCircleCrop(); err != nil {
		t.Fatal(err)
	}
	if err := e.SetCircleRadius(3); err != nil {
		t.Fatal(err)
	}
	if got := e.CircleTool().Spec().Radius; got != 10 {
		t.Errorf("slider radius = %d, want the minimum 10", got)
	}
	if err := e.SetCircleRadius(40); err != nil {
		t.Fatal(err)
	}
	if err := e.MoveCircle(100, 100); err != nil {
		t.Fatal(err)
	}
	if got := e.CircleTool().Spec(); got.CenterX != 50 || got.CenterY != 50 {
		t.Errorf("center = (%d,%d), want (50,50)", got.CenterX, got.CenterY)
	}
	if err := e.NudgeCircle(-30, 5); err != nil {
		t.Fatal(err)
	}
	if got := e.CircleTool().Spec(); got.CenterX != 40 || got.CenterY != 55 {
		t.Errorf("nudged center = (%d,%d), want (40,55)", got.CenterX, got.CenterY)
	}
	if err := e.NudgeCircle(10, -5); err != nil {
		t.Fatal(err)
	}

	committed, err := e.ClickCircle(360)
	if err != nil || committed {
		t.Fatalf("click in control strip should not commit: %v %v", committed, err)
	}
	committed, err = e.ClickCircle(100)
	if err != nil || !committed {
		t.Fatalf("expected commit: %v %v", committed, err)
	}
	if e.CircleTool().State() != circle.StateCommitted {
		t.Errorf("state = %s", e.CircleTool().State())
	}
	img, _ := e.Image()
	if img.Alpha(50, 50) != 255 || img.Alpha(150, 150) != 0 {
		t.Error("crop not applied")
	}
}

func TestEditor_PreviewCircleCrop(t *testing.T) {
	e, _ := newEditor(t, 200, 100)
	e.SetViewport(400, 400)

	preview, err := e.PreviewCircleCrop(circle.Spec{CenterX: 100, CenterY: 50, Radius: 40})
	if err != nil {
		t.Fatal(err)
	}
	if preview.Width() != 400 || preview.Height() != 200 {
		t.Errorf("preview size = %dx%d", preview.Width(), preview.Height())
	}
	img, _ := e.Image()
	if img.Width() != 200 || img.Alpha(0, 0) != 255 {
		t.Error("preview must not change the active image")
	}
}

func TestEditor_Ring(t *testing.T) {
	e, _ := newEditor(t, 200, 200)
	if err := e.ApplyCircleCrop(circle.Spec{CenterX: 100, CenterY: 100, Radius: 50}); err != nil {
		t.Fatal(err)
	}

	out, err := e.BuildRingComposite(ring.DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 100 || out.Height() != 100 {
		t.Fatalf("composite size = %dx%d, want 100x100", out.Width(), out.Height())
	}
	if got := out.At(2, 50); got != (color.NRGBA{A: 255}) {
		t.Errorf("ring edge = %v, want opaque black", got)
	}
	if got := out.At(50, 50); got != red {
		t.Errorf("center = %v, want red", got)
	}
	if img, _ := e.Image(); img.Width() != 200 {
		t.Error("BuildRingComposite must not replace the active image")
	}

	if err := e.ApplyRing(ring.DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	if img, _ := e.Image(); img.Width() != 100 {
		t.Error("ApplyRing should replace the active image")
	}

	session, err := e.RingSession()
	if err != nil {
		t.Fatal(err)
	}
	if session.Style() != ring.DefaultStyle() {
		t.Errorf("session style = %+v", session.Style())
	}
}

func TestEditor_ApplyAlphaTransplant(t *testing.T) {
	e, _ := newEditor(t, 64, 64)

	if _, err := e.ApplyAlphaTransplant(nil); !errors.Is(err, ErrNoReference) {
		t.Errorf("expected ErrNoReference, got %v", err)
	}

	ref := raster.MustNew(64, 64)
	ref.FillDisk(32, 32, 10, color.NRGBA{A: 255})
	out, err := e.ApplyAlphaTransplant(ref)
	if err != nil {
		t.Fatal(err)
	}
	if out.Alpha(32, 32) != 255 || out.Alpha(0, 0) != 0 {
		t.Error("alpha not transplanted")
	}
	if c := out.At(0, 0); c.R != 255 {
		t.Errorf("RGB should be preserved, got %v", c)
	}

	s, err := e.BrokenSession()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetReference(ref); err != nil {
		t.Fatal(err)
	}
	if err := s.Erase(32, 32); err != nil {
		t.Fatal(err)
	}
	if img, _ := e.Image(); img.Alpha(32, 32) != 255 {
		t.Error("broken session must not touch the active image")
	}
}

func TestEditor_Paint(t *testing.T) {
	e, _ := newEditor(t, 50, 50)

	ok, err := e.PaintStroke(paint.Tool{Kind: paint.Draw, Size: 3}, 10, 10)
	if err != nil || !ok {
		t.Fatalf("PaintStroke = %v, %v", ok, err)
	}
	ok, _ = e.PaintStroke(paint.NewTool(), 60, 10)
	if ok {
		t.Error("out-of-bounds stroke should be ignored")
	}
	img, _ := e.Image()
	if got := img.At(10, 10); got != (color.NRGBA{A: 255}) {
		t.Errorf("painted pixel = %v", got)
	}

	if !e.PaintMaskStroke(paint.NewMaskBrush(), 100, 100) {
		t.Fatal("mask stroke should apply")
	}
	mask := e.ExportMask()
	if mask.Width() != paint.MaskSize || mask.Alpha(100, 100) != 255 || mask.Alpha(300, 300) != 0 {
		t.Error("unexpected mask export")
	}
}

func TestEditor_Zoom(t *testing.T) {
	e, _ := newEditor(t, 200, 100)

	for range 5 {
		e.ZoomIn()
	}
	if e.Zoom() != 2.0 {
		t.Errorf("zoom = %v, want 2.0", e.Zoom())
	}
	for range 20 {
		e.ZoomIn()
	}
	if e.Zoom() != MaxZoom {
		t.Errorf("zoom = %v, want %v", e.Zoom(), MaxZoom)
	}
	for range 30 {
		e.ZoomOut()
	}
	if e.Zoom() != MinZoom {
		t.Errorf("zoom = %v, want %v", e.Zoom(), MinZoom)
	}

	// Default viewport 800 at zoom 0.5 fits a 400 box.
	preview, err := e.ZoomPreview()
	if err != nil {
		t.Fatal(err)
	}
	if preview.Width() != 400 || preview.Height() != 200 {
		t.Errorf("preview size = %dx%d, want 400x200", preview.Width(), preview.Height())
	}

	e.ResetZoom()
	if e.Zoom() != 1 {
		t.Errorf("zoom = %v after reset", e.Zoom())
	}
}

func TestEditor_Transform(t *testing.T) {
	e, _ := newEditor(t, 40, 20)
	img, _ := e.Owner().Borrow()
	img.Set(0, 0, color.NRGBA{B: 255, A: 255})

	if err := e.Transform(pipeline.FlipHorizontal); err != nil {
		t.Fatal(err)
	}
	out, _ := e.Image()
	if out.At(39, 0).B != 255 || out.At(0, 0) != red {
		t.Error("flip not applied")
	}
	if err := e.Transform(pipeline.RotateLeft); err != nil {
		t.Fatal(err)
	}
	if out, _ := e.Image(); out.Width() != 40 || out.Height() != 20 {
		t.Error("rotation must keep dimensions")
	}
}

func TestEditor_OpenSave(t *testing.T) {
	e, fs := newEditor(t, 0, 0)
	renderer := ggrenderer.New()

	src, _ := raster.Filled(96, 96, red)
	data, err := renderer.EncodeImage(src.NRGBA(), ports.FormatPNG, 0)
	if err != nil {
		t.Fatal(err)
	}
	fs.WriteFile("in.png", data)

	if err := e.Open(context.Background(), "in.png"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	result, err := e.Save(context.Background(), "out.png", false, true)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if result.Width != 64 || result.BackupPath != "out.png.backup" {
		t.Errorf("unexpected result: %+v", result)
	}
	out, _ := fs.GetFile("out.png")
	backup, ok := fs.GetFile("out.png.backup")
	if !ok || string(out) != string(backup) {
		t.Error("backup should be byte-identical")
	}

	decoded, err := renderer.DecodeImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != image.Rect(0, 0, 64, 64) {
		t.Errorf("saved bounds = %v", decoded.Bounds())
	}
}
