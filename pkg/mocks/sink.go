package mocks

import (
	"image"
	"sync"

	"github.com/user/orbsmith/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	StageImages map[string]image.Image
	Recipe      []byte

	SaveStageImageFunc func(orb, stage string, img image.Image) error
	SaveRecipeFunc     func(data []byte) error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:     enabled,
		StageImages: make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveStageImage(orb, stage string, img image.Image) error {
	if m.SaveStageImageFunc != nil {
		return m.SaveStageImageFunc(orb, stage, img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StageImages[orb+"/"+stage] = img
	return nil
}

func (m *DebugSink) SaveRecipe(data []byte) error {
	if m.SaveRecipeFunc != nil {
		return m.SaveRecipeFunc(data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Recipe = data
	return nil
}

// StageImage returns the image saved for orb/stage (for test verification).
func (m *DebugSink) StageImage(orb, stage string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.StageImages[orb+"/"+stage]
	return img, ok
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                          { return false }
func (m *NullSink) SaveStageImage(orb, stage string, img image.Image) error { return nil }
func (m *NullSink) SaveRecipe(data []byte) error                           { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
