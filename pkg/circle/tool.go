package circle

import (
	"errors"

	"github.com/user/orbsmith/pkg/raster"
	"github.com/user/orbsmith/pkg/viewport"
)

// ReservedControlWidth is the strip at the right edge of the viewport where
// clicks belong to on-canvas controls and never confirm a crop.
const ReservedControlWidth = 50

const (
	// sliderMinRadius is the smallest radius offered while adjusting.
	sliderMinRadius = 10
	// startInset is how far inside the largest fitting circle a new crop starts.
	startInset = 10
)

// ErrNotActive is returned when committing without an active crop.
var ErrNotActive = errors.New("circle: crop tool is not active")

// State is the crop tool's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateActive
	StateCommitted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Tool places a circle over the active image: Idle → Active (dragging the
// center, adjusting the radius) → Committed. Cancel returns Active to Idle
// and discards the uncommitted circle.
type Tool struct {
	state  State
	spec   Spec
	width  int
	height int
	prior  PriorCrop
}

// NewTool returns an idle tool with no prior crop.
func NewTool() *Tool {
	return &Tool{}
}

// State returns the current state.
func (t *Tool) State() State { return t.state }

// Spec returns the circle being placed (or last placed).
func (t *Tool) Spec() Spec { return t.spec }

// Prior returns the last committed crop.
func (t *Tool) Prior() PriorCrop { return t.prior }

// Start enters the Active state for img, centering a circle slightly smaller
// than the largest one that fits.
func (t *Tool) Start(img *raster.Image) error {
	if img == nil {
		return raster.ErrEmpty
	}
	t.width, t.height = img.Size()
	t.spec = DefaultSpec(t.width, t.height)
	t.state = StateActive
	return nil
}

// RadiusRange returns the inclusive radius bounds for the current image.
func (t *Tool) RadiusRange() (int, int) {
	hi := max(1, min(t.width, t.height)/2)
	return min(sliderMinRadius, hi), hi
}

// SetRadius updates the radius, clamped to RadiusRange, and re-clamps the
// center so the circle stays inside the raster. Ignored unless Active.
func (t *Tool) SetRadius(r int) {
	if t.state != StateActive {
		return
	}
	lo, hi := t.RadiusRange()
	t.spec.Radius = max(lo, min(hi, r))
	m := viewport.New(0, 0, t.width, t.height)
	t.spec.CenterX, t.spec.CenterY = m.ClampCenter(t.spec.CenterX, t.spec.CenterY, t.spec.Radius)
}

// Place sets the whole circle at once for crops that bypass the slider. Any
// radius of at least 1 is kept, capped at min(W,H)/2, and only the center is
// clamped into the raster. Fails with ErrNotActive unless Active.
func (t *Tool) Place(s Spec) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if t.state != StateActive {
		return ErrNotActive
	}
	_, hi := t.RadiusRange()
	t.spec.Radius = min(hi, s.Radius)
	m := viewport.New(0, 0, t.width, t.height)
	t.spec.CenterX, t.spec.CenterY = m.ClampCenter(s.CenterX, s.CenterY, t.spec.Radius)
	return nil
}

// Move places the center under the pointer at viewport point (vx, vy).
// The mapped point is clamped so the circle never leaves the raster.
// Returns false when the tool is not Active.
func (t *Tool) Move(m viewport.Mapper, vx, vy float64) bool {
	if t.state != StateActive {
		return false
	}
	rx, ry := m.ToRaster(vx, vy)
	t.spec.CenterX, t.spec.CenterY = m.ClampCenter(rx, ry, t.spec.Radius)
	return true
}

// MoveTo places the center at raster point (x, y), clamped like Move.
func (t *Tool) MoveTo(x, y int) bool {
	if t.state != StateActive {
		return false
	}
	m := viewport.New(0, 0, t.width, t.height)
	t.spec.CenterX, t.spec.CenterY = m.ClampCenter(x, y, t.spec.Radius)
	return true
}

// IsConfirmClick reports whether a click at viewport x confirms the crop,
// i.e. the tool is Active and the click is outside the reserved control strip.
func (t *Tool) IsConfirmClick(m viewport.Mapper, vx float64) bool {
	if t.state != StateActive {
		return false
	}
	vw, _ := m.ViewportSize()
	return vx <= float64(vw-ReservedControlWidth)
}

// Commit crops img with the current circle, records it as the prior crop and
// enters the Committed state.
func (t *Tool) Commit(img *raster.Image) (*raster.Image, PriorCrop, error) {
	if img == nil {
		return nil, t.prior, raster.ErrEmpty
	}
	if t.state != StateActive {
		return nil, t.prior, ErrNotActive
	}
	out, err := ApplyCrop(img, t.spec)
	if err != nil {
		return nil, t.prior, err
	}
	t.prior = Committed(t.spec)
	t.state = StateCommitted
	return out, t.prior, nil
}

// Cancel discards an uncommitted circle and returns to Idle. A crop
// committed earlier stays available through Prior.
func (t *Tool) Cancel() {
	if t.state != StateActive {
		return
	}
	if spec, ok := t.prior.Get(); ok {
		t.spec = spec
	}
	t.state = StateIdle
}
