// Package load implements the stage that reads and decodes source images.
package load

import (
	"context"
	"fmt"

	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

// Stage decodes an image file into a raster.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new load stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("load"),
	}
}

// Execute reads input.Path and decodes it as PNG, JPEG, BMP or WebP.
func (s *Stage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.ImageResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ImageResult{}, err
	}

	data, err := s.fs.ReadFile(input.Path)
	if err != nil {
		return pipeline.ImageResult{}, fmt.Errorf("read %s: %w", input.Path, err)
	}
	decoded, err := s.renderer.DecodeImage(data)
	if err != nil {
		return pipeline.ImageResult{}, fmt.Errorf("decode %s: %w", input.Path, err)
	}
	img, err := raster.FromImage(decoded)
	if err != nil {
		return pipeline.ImageResult{}, fmt.Errorf("convert %s: %w", input.Path, err)
	}

	s.logger.Debug("Loaded %s: %dx%d", input.Path, img.Width(), img.Height())
	return pipeline.ImageResult{Image: img}, nil
}
