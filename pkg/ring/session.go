package ring

import (
	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
)

// Session is one ring-editing pass over a base image. Every parameter change
// rebuilds the composite from the untouched base, so previews never stack.
type Session struct {
	compositor *Compositor
	base       *raster.Image
	prior      circle.PriorCrop
	style      Style
	preview    *raster.Image
}

// NewSession starts a session with the default style and builds the first
// preview.
func NewSession(compositor *Compositor, base *raster.Image, prior circle.PriorCrop) (*Session, error) {
	if base == nil {
		return nil, raster.ErrEmpty
	}
	s := &Session{
		compositor: compositor,
		base:       base.Clone(),
		prior:      prior,
		style:      DefaultStyle(),
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Style returns the current style.
func (s *Session) Style() Style { return s.style }

// Preview returns the composite for the current style.
func (s *Session) Preview() *raster.Image { return s.preview }

// SetWidth changes the ring thickness, clamped to [1, MaxWidth].
func (s *Session) SetWidth(width int) error {
	s.style.Width = max(1, min(MaxWidth, width))
	return s.rebuild()
}

// SetColor changes the ring color.
func (s *Session) SetColor(rgb [3]uint8) error {
	s.style.Color = rgb
	return s.rebuild()
}

// ApplyPreset replaces the style with a stored preset.
func (s *Session) ApplyPreset(p ports.RingPreset) error {
	s.style = FromPreset(p).Normalize()
	return s.rebuild()
}

// SavePreset stores the current style under name.
func (s *Session) SavePreset(store ports.PresetStore, name string) error {
	return store.Save(name, s.style.Preset())
}

// Apply returns the final composite. The session stays usable.
func (s *Session) Apply() *raster.Image {
	return s.preview.Clone()
}

func (s *Session) rebuild() error {
	out, err := s.compositor.Build(s.base, s.prior, s.style)
	if err != nil {
		return err
	}
	s.preview = out
	return nil
}
