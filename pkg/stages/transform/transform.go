// Package transform implements the flip and rotate stage.
package transform

import (
	"context"

	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

// Stage applies whole-image transforms in order.
type Stage struct {
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new transform stage.
func NewStage(sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		sink:   sink,
		logger: logger.WithComponent("transform"),
	}
}

// Execute returns a new image with input.Ops applied. With no ops the result
// is a copy of the input.
func (s *Stage) Execute(ctx context.Context, input pipeline.TransformInput) (pipeline.ImageResult, error) {
	if input.Image == nil {
		return pipeline.ImageResult{}, raster.ErrEmpty
	}
	if err := ctx.Err(); err != nil {
		return pipeline.ImageResult{}, err
	}

	img := input.Image.Clone()
	for _, op := range input.Ops {
		s.logger.Debug("Applying %s", op)
		img = Apply(img, op)
	}

	if len(input.Ops) > 0 && s.sink.Enabled() {
		if err := s.sink.SaveStageImage(input.Orb, "transform", img.NRGBA()); err != nil {
			s.logger.Warn("Failed to save debug image: %s", err)
		}
	}
	return pipeline.ImageResult{Image: img}, nil
}

// Apply returns img with one transform applied.
func Apply(img *raster.Image, op pipeline.TransformOp) *raster.Image {
	switch op {
	case pipeline.FlipHorizontal:
		return img.FlipHorizontal()
	case pipeline.FlipVertical:
		return img.FlipVertical()
	case pipeline.RotateLeft:
		return img.Rotate(1)
	case pipeline.RotateRight:
		return img.Rotate(-1)
	default:
		return img
	}
}
