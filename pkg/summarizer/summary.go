// Package summarizer provides summary generation for skin builds.
package summarizer

import "time"

// Summary contains all data collected during a build.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source image
	Source SourceInfo

	// Build settings
	Settings Settings

	// Written orbs in build order
	Orbs []OrbInfo
}

// SourceInfo describes the input image.
type SourceInfo struct {
	Path   string
	Width  int
	Height int
}

// CircleInfo is the crop circle actually used.
type CircleInfo struct {
	X      int
	Y      int
	Radius int
}

// Settings contains the build configuration.
type Settings struct {
	Transforms []string
	Circle     *CircleInfo // nil when no crop was committed
	RingColor  string
	RingWidth  int
	NativeSize bool
	Backup     bool
}

// OrbInfo describes one written orb file.
type OrbInfo struct {
	Name       string
	Path       string
	BackupPath string
	Width      int
	Height     int
	FileSize   int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// TotalBytes returns the combined size of all written orbs.
func (s *Summary) TotalBytes() int64 {
	var total int64
	for _, o := range s.Orbs {
		total += o.FileSize
	}
	return total
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source image information.
func (b *Builder) WithSource(path string, width, height int) *Builder {
	b.summary.Source = SourceInfo{
		Path:   path,
		Width:  width,
		Height: height,
	}
	return b
}

// WithSettings sets build settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddOrb appends a written orb.
func (b *Builder) AddOrb(orb OrbInfo) *Builder {
	b.summary.Orbs = append(b.summary.Orbs, orb)
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
