// Package crop implements the circular crop stage.
package crop

import (
	"context"
	"fmt"

	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

// Stage places and commits a circle the way the interactive tool does.
type Stage struct {
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new crop stage.
func NewStage(sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		sink:   sink,
		logger: logger.WithComponent("crop"),
	}
}

// Execute cuts the circle out of input.Image. The requested radius is capped
// at min(W,H)/2 and the center kept inside the raster.
func (s *Stage) Execute(ctx context.Context, input pipeline.CropInput) (pipeline.CropResult, error) {
	if input.Image == nil {
		return pipeline.CropResult{}, raster.ErrEmpty
	}
	if err := ctx.Err(); err != nil {
		return pipeline.CropResult{}, err
	}

	tool := circle.NewTool()
	if err := tool.Start(input.Image); err != nil {
		return pipeline.CropResult{}, err
	}
	if input.Circle != nil {
		if err := tool.Place(*input.Circle); err != nil {
			return pipeline.CropResult{}, fmt.Errorf("place circle: %w", err)
		}
		if got := tool.Spec(); got != *input.Circle {
			s.logger.Warn("Circle adjusted to fit: center (%d, %d) radius %d", got.CenterX, got.CenterY, got.Radius)
		}
	}

	spec := tool.Spec()
	s.logger.Debug("Cropping circle at (%d, %d) radius %d", spec.CenterX, spec.CenterY, spec.Radius)
	img, prior, err := tool.Commit(input.Image)
	if err != nil {
		return pipeline.CropResult{}, fmt.Errorf("commit crop: %w", err)
	}

	if s.sink.Enabled() {
		if err := s.sink.SaveStageImage(input.Orb, "crop", img.NRGBA()); err != nil {
			s.logger.Warn("Failed to save debug image: %s", err)
		}
	}
	return pipeline.CropResult{Image: img, Prior: prior}, nil
}
