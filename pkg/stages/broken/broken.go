// Package broken implements the alpha-transplant stage for damaged orbs.
package broken

import (
	"context"

	orbbroken "github.com/user/orbsmith/pkg/broken"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
)

// Stage gives the base orb the silhouette of a broken reference.
type Stage struct {
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new broken stage.
func NewStage(sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		sink:   sink,
		logger: logger.WithComponent("broken"),
	}
}

// Execute transplants the reference alpha and replays eraser strokes.
// Strokes outside the image are skipped.
func (s *Stage) Execute(ctx context.Context, input pipeline.BrokenInput) (pipeline.ImageResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ImageResult{}, err
	}

	session, err := orbbroken.NewSession(input.Base)
	if err != nil {
		return pipeline.ImageResult{}, err
	}
	if err := session.SetReference(input.Reference); err != nil {
		return pipeline.ImageResult{}, err
	}

	bw, bh := input.Base.Size()
	rw, rh := input.Reference.Size()
	s.logger.Debug("Transplanting alpha: reference %dx%d onto %dx%d", rw, rh, bw, bh)

	if len(input.Erase) > 0 {
		if input.EraserSize > 0 {
			session.Eraser().SetSize(input.EraserSize)
		}
		for _, p := range input.Erase {
			if err := session.Erase(p.X, p.Y); err != nil {
				return pipeline.ImageResult{}, err
			}
		}
		s.logger.Debug("Applied %d eraser strokes of size %d", len(input.Erase), session.Eraser().Size())
	}

	img, err := session.Result()
	if err != nil {
		return pipeline.ImageResult{}, err
	}

	if s.sink.Enabled() {
		if err := s.sink.SaveStageImage(input.Orb, "broken", img.NRGBA()); err != nil {
			s.logger.Warn("Failed to save debug image: %s", err)
		}
	}
	return pipeline.ImageResult{Image: img}, nil
}
