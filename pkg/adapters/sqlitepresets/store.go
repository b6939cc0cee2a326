// Package sqlitepresets stores ring presets in an SQLite database using the
// pure-Go modernc.org/sqlite driver.
package sqlitepresets

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/user/orbsmith/pkg/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS ring_presets (
	name      TEXT PRIMARY KEY,
	red       INTEGER NOT NULL,
	green     INTEGER NOT NULL,
	blue      INTEGER NOT NULL,
	thickness INTEGER NOT NULL
)`

// Store implements ports.PresetStore on an *sql.DB.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and prepares the schema.
// Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open preset db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)
	s := New(db)
	if err := s.Init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing database. Call Init before use.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init creates the presets table if needed.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create preset table: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns all presets keyed by name.
func (s *Store) List() (map[string]ports.RingPreset, error) {
	rows, err := s.db.Query(`SELECT name, red, green, blue, thickness FROM ring_presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	presets := make(map[string]ports.RingPreset)
	for rows.Next() {
		var name string
		var p ports.RingPreset
		if err := rows.Scan(&name, &p.Color[0], &p.Color[1], &p.Color[2], &p.Thickness); err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		presets[name] = p
	}
	return presets, rows.Err()
}

// Get returns one preset or ports.ErrPresetNotFound.
func (s *Store) Get(name string) (ports.RingPreset, error) {
	var p ports.RingPreset
	err := s.db.QueryRow(
		`SELECT red, green, blue, thickness FROM ring_presets WHERE name = ?`, name,
	).Scan(&p.Color[0], &p.Color[1], &p.Color[2], &p.Thickness)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RingPreset{}, fmt.Errorf("%w: %s", ports.ErrPresetNotFound, name)
	}
	if err != nil {
		return ports.RingPreset{}, fmt.Errorf("get preset %s: %w", name, err)
	}
	return p, nil
}

// Save creates or replaces a preset.
func (s *Store) Save(name string, preset ports.RingPreset) error {
	_, err := s.db.Exec(`
		INSERT INTO ring_presets (name, red, green, blue, thickness)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			red = excluded.red,
			green = excluded.green,
			blue = excluded.blue,
			thickness = excluded.thickness`,
		name, preset.Color[0], preset.Color[1], preset.Color[2], preset.Thickness,
	)
	if err != nil {
		return fmt.Errorf("save preset %s: %w", name, err)
	}
	return nil
}

// Delete removes a preset. Deleting a missing preset is not an error.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM ring_presets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete preset %s: %w", name, err)
	}
	return nil
}

// Ensure Store implements ports.PresetStore
var _ ports.PresetStore = (*Store)(nil)
