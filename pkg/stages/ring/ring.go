// Package ring implements the ring compositing stage.
package ring

import (
	"context"

	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
	orbring "github.com/user/orbsmith/pkg/ring"
)

// Stage draws the colored ring around the cropped orb.
type Stage struct {
	compositor *orbring.Compositor
	sink       ports.DebugSink
	logger     ports.Logger
}

// NewStage creates a new ring stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		compositor: orbring.NewCompositor(renderer),
		sink:       sink,
		logger:     logger.WithComponent("ring"),
	}
}

// Execute builds the ring composite from input.Image.
func (s *Stage) Execute(ctx context.Context, input pipeline.RingInput) (pipeline.ImageResult, error) {
	if input.Image == nil {
		return pipeline.ImageResult{}, raster.ErrEmpty
	}
	if err := ctx.Err(); err != nil {
		return pipeline.ImageResult{}, err
	}

	style := input.Style.Normalize()
	if !input.Prior.Present() {
		s.logger.Debug("No committed crop, using centered square")
	}
	s.logger.Debug("Drawing ring: width %d, color #%02x%02x%02x",
		style.Width, style.Color[0], style.Color[1], style.Color[2])

	img, err := s.compositor.Build(input.Image, input.Prior, style)
	if err != nil {
		return pipeline.ImageResult{}, err
	}

	if s.sink.Enabled() {
		if err := s.sink.SaveStageImage(input.Orb, "ring", img.NRGBA()); err != nil {
			s.logger.Warn("Failed to save debug image: %s", err)
		}
	}
	return pipeline.ImageResult{Image: img}, nil
}
