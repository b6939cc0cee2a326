// Package ports declares the interfaces between the orb engine's stages and
// the outside world: codecs, drawing, files, logging, presets and debug output.
package ports

// FileSystem abstracts file access for loading sources and writing orbs.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces a file with data, creating parent directories if
	// necessary. Readers never observe a partially written file.
	WriteFile(path string, data []byte) error

	// Copy duplicates src to dst byte for byte.
	Copy(src, dst string) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
