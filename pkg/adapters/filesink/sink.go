// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/user/orbsmith/pkg/ports"
)

// Sink saves debug output to files under baseDir:
//
//	recipe.yaml
//	<orb>/01-<stage>.png
//	<orb>/02-<stage>.png
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer

	mu  sync.Mutex
	seq map[string]int
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
		seq:      make(map[string]int),
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveStageImage writes img as a PNG numbered in the order stages ran for orb.
func (s *Sink) SaveStageImage(orb, stage string, img image.Image) error {
	s.mu.Lock()
	s.seq[orb]++
	n := s.seq[orb]
	s.mu.Unlock()

	dir := filepath.Join(s.baseDir, orb)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s image: %w", stage, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%02d-%s.png", n, stage))
	return s.fs.WriteFile(path, data)
}

// SaveRecipe saves the effective build recipe.
func (s *Sink) SaveRecipe(data []byte) error {
	path := filepath.Join(s.baseDir, "recipe.yaml")
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
