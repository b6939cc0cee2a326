package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/orbsmith/pkg/mocks"
	"github.com/user/orbsmith/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func pngRenderer() *mocks.Renderer {
	return &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil // PNG header
		},
	}
}

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveRecipe(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	data := []byte("source: orb.png\n")
	if err := sink.SaveRecipe(data); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "recipe.yaml")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveStageImageNumbersPerOrb(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, pngRenderer())
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	steps := []struct{ orb, stage string }{
		{"full", "transform"},
		{"full", "crop"},
		{"medium", "broken"},
		{"full", "ring"},
	}
	for _, s := range steps {
		if err := sink.SaveStageImage(s.orb, s.stage, img); err != nil {
			t.Fatalf("SaveStageImage(%s, %s) failed: %v", s.orb, s.stage, err)
		}
	}

	for _, want := range []string{
		filepath.Join(testBaseDir, "full", "01-transform.png"),
		filepath.Join(testBaseDir, "full", "02-crop.png"),
		filepath.Join(testBaseDir, "full", "03-ring.png"),
		filepath.Join(testBaseDir, "medium", "01-broken.png"),
	} {
		if _, ok := fs.GetFile(want); !ok {
			t.Errorf("expected file to be saved at %s", want)
		}
	}
	if n := len(fs.Paths()); n != 4 {
		t.Errorf("expected 4 files, got %d", n)
	}
}

func TestSink_SaveStageImageEncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	encodeErr := errors.New("boom")
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, encodeErr
		},
	}
	sink := New(testBaseDir, fs, renderer)

	err := sink.SaveStageImage("full", "crop", image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, encodeErr) {
		t.Errorf("expected wrapped encode error, got %v", err)
	}
}
