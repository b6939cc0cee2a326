package mocks

import (
	"sync"

	"github.com/user/orbsmith/pkg/ports"
)

// PresetStore is an in-memory implementation of ports.PresetStore.
type PresetStore struct {
	mu      sync.RWMutex
	presets map[string]ports.RingPreset

	SaveFunc func(name string, preset ports.RingPreset) error
}

// NewPresetStore creates a new mock PresetStore.
func NewPresetStore() *PresetStore {
	return &PresetStore{presets: make(map[string]ports.RingPreset)}
}

func (m *PresetStore) List() (map[string]ports.RingPreset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]ports.RingPreset, len(m.presets))
	for k, v := range m.presets {
		out[k] = v
	}
	return out, nil
}

func (m *PresetStore) Get(name string) (ports.RingPreset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.presets[name]
	if !ok {
		return ports.RingPreset{}, ports.ErrPresetNotFound
	}
	return p, nil
}

func (m *PresetStore) Save(name string, preset ports.RingPreset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(name, preset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presets[name] = preset
	return nil
}

func (m *PresetStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.presets, name)
	return nil
}

var _ ports.PresetStore = (*PresetStore)(nil)
