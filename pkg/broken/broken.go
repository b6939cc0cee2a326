// Package broken derives the damaged orb variants by transplanting the alpha
// channel of a "broken" reference onto the finished full-health orb.
package broken

import (
	"errors"

	"github.com/user/orbsmith/pkg/paint"
	"github.com/user/orbsmith/pkg/raster"
)

// ErrNoReference is returned when no broken reference has been loaded.
var ErrNoReference = errors.New("broken: no reference image")

// Apply returns a copy of base whose alpha channel is taken from reference,
// resized to base's dimensions. RGB values are copied from base unchanged.
func Apply(base, reference *raster.Image) (*raster.Image, error) {
	if base == nil {
		return nil, raster.ErrEmpty
	}
	if reference == nil {
		return nil, ErrNoReference
	}
	w, h := base.Size()
	ref := reference
	if rw, rh := reference.Size(); rw != w || rh != h {
		var err error
		if ref, err = reference.Resize(w, h); err != nil {
			return nil, err
		}
	}

	out := base.Clone()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetAlpha(x, y, ref.Alpha(x, y))
		}
	}
	return out, nil
}

// Session is one alpha-transplant pass. The derived image is recomputed from
// base and reference until the eraser touches it; from then on the edited
// buffer is the result.
type Session struct {
	base      *raster.Image
	reference *raster.Image
	derived   *raster.Image
	eraser    *paint.Eraser
	edited    bool
}

// NewSession starts a session over base. The reference may be set later.
func NewSession(base *raster.Image) (*Session, error) {
	if base == nil {
		return nil, raster.ErrEmpty
	}
	return &Session{base: base.Clone(), eraser: paint.NewEraser()}, nil
}

// SetReference loads the broken reference and re-derives the result,
// discarding eraser edits.
func (s *Session) SetReference(reference *raster.Image) error {
	if reference == nil {
		return ErrNoReference
	}
	derived, err := Apply(s.base, reference)
	if err != nil {
		return err
	}
	s.reference = reference.Clone()
	s.derived = derived
	s.edited = false
	return nil
}

// Eraser returns the session's eraser so its size can be adjusted.
func (s *Session) Eraser() *paint.Eraser { return s.eraser }

// Edited reports whether the derived buffer has eraser edits.
func (s *Session) Edited() bool { return s.edited }

// Erase clears alpha in a disk centered at (x, y) in raster coordinates.
// Centers outside the image are ignored.
func (s *Session) Erase(x, y int) error {
	if s.derived == nil {
		return ErrNoReference
	}
	if s.eraser.Stroke(s.derived, x, y) {
		s.edited = true
	}
	return nil
}

// Preview returns the current derived buffer without copying it.
func (s *Session) Preview() (*raster.Image, error) {
	if s.derived == nil {
		return nil, ErrNoReference
	}
	return s.derived, nil
}

// Result returns the final image: a copy of the edited buffer when the eraser
// was used, otherwise a fresh derivation from base and reference.
func (s *Session) Result() (*raster.Image, error) {
	if s.reference == nil {
		return nil, ErrNoReference
	}
	if s.edited {
		return s.derived.Clone(), nil
	}
	return Apply(s.base, s.reference)
}
