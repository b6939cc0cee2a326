package export

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/orbsmith/pkg/adapters/logger"
	"github.com/user/orbsmith/pkg/mocks"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

// sizeRenderer encodes an image as its dimensions so tests can check them.
func sizeRenderer() *mocks.Renderer {
	return &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			b := img.Bounds()
			return []byte{byte(b.Dx()), byte(b.Dy())}, nil
		},
	}
}

func TestStage_Execute_Resizes(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, sizeRenderer(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ExportInput{
		Image: raster.MustNew(160, 160),
		Path:  "out/full_health.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Width != 64 || result.Height != 64 {
		t.Errorf("expected 64x64, got %dx%d", result.Width, result.Height)
	}
	data, ok := fs.GetFile("out/full_health.png")
	if !ok || data[0] != 64 || data[1] != 64 {
		t.Errorf("expected 64x64 encoded file, got %v", data)
	}
	if result.BackupPath != "" {
		t.Error("no backup requested")
	}
	if result.FileSize != 2 {
		t.Errorf("expected file size 2, got %d", result.FileSize)
	}
}

func TestStage_Execute_NativeWithBackup(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, sizeRenderer(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ExportInput{
		Image:  raster.MustNew(120, 90),
		Path:   "orb.png",
		Native: true,
		Backup: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Width != 120 || result.Height != 90 {
		t.Errorf("expected native size, got %dx%d", result.Width, result.Height)
	}
	if result.BackupPath != "orb.png.backup" {
		t.Errorf("unexpected backup path %q", result.BackupPath)
	}
	orig, _ := fs.GetFile("orb.png")
	backup, ok := fs.GetFile("orb.png.backup")
	if !ok || string(orig) != string(backup) {
		t.Error("backup should be byte-identical")
	}
	ops := fs.Ops()
	if len(ops) != 2 || ops[0] != "write orb.png" || ops[1] != "copy orb.png orb.png.backup" {
		t.Errorf("backup should be copied after the write, got %v", ops)
	}
}

func TestStage_Execute_BackupFailureIsNotFatal(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.CopyFunc = func(src, dst string) error { return errors.New("disk full") }
	stage := NewStage(fs, sizeRenderer(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ExportInput{
		Image:  raster.MustNew(8, 8),
		Path:   "orb.png",
		Backup: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BackupPath != "" {
		t.Error("failed backup should not be reported")
	}
}

func TestStage_Execute_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	writeErr := errors.New("read-only")
	fs.WriteFileFunc = func(path string, data []byte) error { return writeErr }
	stage := NewStage(fs, sizeRenderer(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ExportInput{Image: raster.MustNew(8, 8), Path: "orb.png"})
	if !errors.Is(err, writeErr) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestStage_Execute_NoImage(t *testing.T) {
	stage := NewStage(mocks.NewFileSystem(), sizeRenderer(), logger.NewNoop())
	if _, err := stage.Execute(context.Background(), pipeline.ExportInput{Path: "x.png"}); !errors.Is(err, raster.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}
