package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving the image produced by each build stage for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveStageImage saves the image produced by a stage for one orb
	// (e.g. orb "full", stage "crop").
	SaveStageImage(orb, stage string, img image.Image) error

	// SaveRecipe saves the effective build recipe.
	SaveRecipe(data []byte) error
}
