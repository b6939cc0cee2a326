// Package yamlpresets stores ring presets in a single YAML file. Since YAML
// is a superset of JSON, preset files written as JSON load unchanged.
package yamlpresets

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/user/orbsmith/pkg/ports"
)

// Store implements ports.PresetStore on top of a file.
type Store struct {
	path string
	fs   ports.FileSystem
	mu   sync.Mutex
}

// New creates a Store backed by path. The file is created on first Save.
func New(path string, fs ports.FileSystem) *Store {
	return &Store{path: path, fs: fs}
}

// List returns all presets keyed by name. A missing file is an empty set.
func (s *Store) List() (map[string]ports.RingPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns one preset or ports.ErrPresetNotFound.
func (s *Store) Get(name string) (ports.RingPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	presets, err := s.load()
	if err != nil {
		return ports.RingPreset{}, err
	}
	p, ok := presets[name]
	if !ok {
		return ports.RingPreset{}, fmt.Errorf("%w: %s", ports.ErrPresetNotFound, name)
	}
	return p, nil
}

// Save creates or replaces a preset and rewrites the file.
func (s *Store) Save(name string, preset ports.RingPreset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	presets, err := s.load()
	if err != nil {
		return err
	}
	presets[name] = preset
	return s.store(presets)
}

// Delete removes a preset. Deleting a missing preset is not an error.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	presets, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := presets[name]; !ok {
		return nil
	}
	delete(presets, name)
	return s.store(presets)
}

func (s *Store) load() (map[string]ports.RingPreset, error) {
	presets := make(map[string]ports.RingPreset)
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return presets, nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", s.path, err)
	}
	if presets == nil {
		presets = make(map[string]ports.RingPreset)
	}
	return presets, nil
}

// store writes presets sorted by name using flow-style colors.
func (s *Store) store(presets map[string]ports.RingPreset) error {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		var value yaml.Node
		if err := value.Encode(presets[name]); err != nil {
			return fmt.Errorf("encode preset %s: %w", name, err)
		}
		for i := 0; i+1 < len(value.Content); i += 2 {
			if value.Content[i].Value == "color" {
				value.Content[i+1].Style = yaml.FlowStyle
			}
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&value,
		)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	return s.fs.WriteFile(s.path, data)
}

// Ensure Store implements ports.PresetStore
var _ ports.PresetStore = (*Store)(nil)
