package transform

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/user/orbsmith/pkg/adapters/logger"
	"github.com/user/orbsmith/pkg/mocks"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/raster"
)

var red = color.NRGBA{R: 255, A: 255}

// marked returns a 4x4 transparent image with one red pixel at (3, 0).
func marked() *raster.Image {
	img := raster.MustNew(4, 4)
	img.Set(3, 0, red)
	return img
}

func TestApply(t *testing.T) {
	tests := []struct {
		op    pipeline.TransformOp
		wantX int
		wantY int
	}{
		{pipeline.FlipHorizontal, 0, 0},
		{pipeline.FlipVertical, 3, 3},
		{pipeline.RotateLeft, 0, 0},
		{pipeline.RotateRight, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			out := Apply(marked(), tt.op)
			if out.At(tt.wantX, tt.wantY) != red {
				t.Errorf("expected red pixel at (%d,%d)", tt.wantX, tt.wantY)
			}
		})
	}
}

func TestStage_Execute(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(sink, logger.NewNoop())
	src := marked()

	result, err := stage.Execute(context.Background(), pipeline.TransformInput{
		Orb:   pipeline.OrbFull,
		Image: src,
		Ops:   []pipeline.TransformOp{pipeline.RotateLeft, pipeline.RotateRight, pipeline.FlipVertical},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Image.At(3, 3) != red {
		t.Error("expected rotations to cancel and the flip to move the pixel to (3,3)")
	}
	if src.At(3, 0) != red {
		t.Error("source image was modified")
	}
	if _, ok := sink.StageImage(pipeline.OrbFull, "transform"); !ok {
		t.Error("expected debug image to be saved")
	}
}

func TestStage_Execute_NoOps(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(sink, logger.NewNoop())
	src := marked()

	result, err := stage.Execute(context.Background(), pipeline.TransformInput{Image: src})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Image.Equal(src) || result.Image == src {
		t.Error("expected an equal copy")
	}
	if len(sink.StageImages) != 0 {
		t.Error("no debug image expected without ops")
	}
}

func TestStage_Execute_NoImage(t *testing.T) {
	stage := NewStage(mocks.NewDebugSink(false), logger.NewNoop())
	if _, err := stage.Execute(context.Background(), pipeline.TransformInput{}); !errors.Is(err, raster.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestParseTransformOp(t *testing.T) {
	for _, op := range []pipeline.TransformOp{
		pipeline.FlipHorizontal, pipeline.FlipVertical, pipeline.RotateLeft, pipeline.RotateRight,
	} {
		got, err := pipeline.ParseTransformOp(op.String())
		if err != nil || got != op {
			t.Errorf("ParseTransformOp(%q) = %v, %v", op.String(), got, err)
		}
	}
	if _, err := pipeline.ParseTransformOp("spin"); err == nil {
		t.Error("expected error for unknown transform")
	}
}
