// Package export implements the stage that writes finished orbs to disk.
package export

import (
	"context"
	"fmt"

	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

// BackupSuffix is appended to the output path for the backup copy.
const BackupSuffix = ".backup"

// Stage encodes an orb as PNG and writes it, optionally with a backup.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new export stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("export"),
	}
}

// Execute writes input.Image to input.Path. A failed backup is logged and
// does not fail the export.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	if input.Image == nil {
		return pipeline.ExportResult{}, raster.ErrEmpty
	}
	if err := ctx.Err(); err != nil {
		return pipeline.ExportResult{}, err
	}

	img := input.Image
	if !input.Native {
		img = img.ResizeTo64()
	}
	s.logger.Debug("Exporting %dx%d PNG", img.Width(), img.Height())

	data, err := s.renderer.EncodeImage(img.NRGBA(), ports.FormatPNG, 0)
	if err != nil {
		return pipeline.ExportResult{}, fmt.Errorf("encode PNG: %w", err)
	}
	if err := s.fs.WriteFile(input.Path, data); err != nil {
		return pipeline.ExportResult{}, fmt.Errorf("write %s: %w", input.Path, err)
	}

	result := pipeline.ExportResult{
		Path:     input.Path,
		Width:    img.Width(),
		Height:   img.Height(),
		FileSize: int64(len(data)),
	}

	if input.Backup {
		backup := input.Path + BackupSuffix
		if err := s.fs.Copy(input.Path, backup); err != nil {
			s.logger.Warn("Failed to write backup: %s", err)
		} else {
			result.BackupPath = backup
			s.logger.Debug("Backup written to %s", backup)
		}
	}
	return result, nil
}
