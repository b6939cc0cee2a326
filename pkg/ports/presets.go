package ports

import "errors"

// ErrPresetNotFound is returned when a named preset does not exist.
var ErrPresetNotFound = errors.New("preset not found")

// RingPreset is the persisted form of a ring style.
type RingPreset struct {
	Color     [3]uint8 `yaml:"color"`
	Thickness int      `yaml:"thickness"`
}

// PresetStore persists ring presets as a named mapping.
type PresetStore interface {
	// List returns all presets keyed by name.
	List() (map[string]RingPreset, error)

	// Get returns one preset or ErrPresetNotFound.
	Get(name string) (RingPreset, error)

	// Save creates or replaces a preset.
	Save(name string, preset RingPreset) error

	// Delete removes a preset. Deleting a missing preset is not an error.
	Delete(name string) error
}
