// Package orbsmith provides a high-level API over the orb editing engine.
//
// An Editor owns one active image and exposes the operations a host UI or the
// command line calls into: viewport mapping, circular crop, ring overlay,
// alpha transplant, painting, the broken-mask canvas and export.
package orbsmith

import (
	"context"
	"math"

	"github.com/user/orbsmith/pkg/broken"
	"github.com/user/orbsmith/pkg/circle"
	"github.com/user/orbsmith/pkg/paint"
	"github.com/user/orbsmith/pkg/pipeline"
	"github.com/user/orbsmith/pkg/ports"
	"github.com/user/orbsmith/pkg/raster"
	"github.com/user/orbsmith/pkg/ring"
	"github.com/user/orbsmith/pkg/stages/export"
	"github.com/user/orbsmith/pkg/stages/load"
	"github.com/user/orbsmith/pkg/stages/transform"
	"github.com/user/orbsmith/pkg/viewport"
)

var (
	// ErrNoImage is returned when an operation needs an active image.
	ErrNoImage = raster.ErrEmpty
	// ErrNoReference is returned when an operation needs a broken reference.
	ErrNoReference = broken.ErrNoReference
)

// Zoom limits for the preview thumbnail.
const (
	MinZoom  = 0.5
	MaxZoom  = 3.0
	ZoomStep = 0.2
)

// Editor is a single-threaded editing session over one active image.
type Editor struct {
	owner    *raster.Owner
	renderer ports.Renderer
	fs       ports.FileSystem
	logger   ports.Logger

	viewportW, viewportH int
	zoom                 float64

	circleTool *circle.Tool
	compositor *ring.Compositor
	mask       *paint.BinaryMask
}

// NewEditor creates an Editor with no active image and a default viewport.
func NewEditor(renderer ports.Renderer, fs ports.FileSystem, logger ports.Logger) *Editor {
	return &Editor{
		owner:      raster.NewOwner(nil),
		renderer:   renderer,
		fs:         fs,
		logger:     logger.WithComponent("editor"),
		zoom:       1,
		circleTool: circle.NewTool(),
		compositor: ring.NewCompositor(renderer),
		mask:       paint.NewBinaryMask(nil),
	}
}

// Owner returns the holder of the active image.
func (e *Editor) Owner() *raster.Owner { return e.owner }

// SetImage makes img the active image. The circle tool and its prior crop
// are reset.
func (e *Editor) SetImage(img *raster.Image) {
	e.owner.Replace(img)
	e.circleTool = circle.NewTool()
}

// Image returns a copy of the active image.
func (e *Editor) Image() (*raster.Image, error) {
	return e.owner.Snapshot()
}

// TakeImage hands the active image to the caller without copying and leaves
// the editor empty.
func (e *Editor) TakeImage() (*raster.Image, error) {
	img, err := e.owner.Take()
	if err != nil {
		return nil, err
	}
	e.circleTool = circle.NewTool()
	return img, nil
}

// Open decodes path and makes it the active image.
func (e *Editor) Open(ctx context.Context, path string) error {
	stage := load.NewStage(e.fs, e.renderer, e.logger)
	result, err := stage.Execute(ctx, pipeline.LoadInput{Orb: "editor", Path: path})
	if err != nil {
		return err
	}
	e.SetImage(result.Image)
	return nil
}

// Save writes the active image as PNG, resized to 64×64 unless native. With
// backup a byte-identical path+".backup" is written too.
func (e *Editor) Save(ctx context.Context, path string, native, backup bool) (pipeline.ExportResult, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return pipeline.ExportResult{}, err
	}
	stage := export.NewStage(e.fs, e.renderer, e.logger)
	return stage.Execute(ctx, pipeline.ExportInput{
		Orb:    "editor",
		Image:  img,
		Path:   path,
		Native: native,
		Backup: backup,
	})
}

// =============================================================================
// Viewport
// =============================================================================

// SetViewport records the display size. Non-positive values fall back to
// viewport.DefaultSize.
func (e *Editor) SetViewport(width, height int) {
	e.viewportW, e.viewportH = width, height
}

// Mapper returns the mapper for the current viewport and active image.
func (e *Editor) Mapper() (viewport.Mapper, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return viewport.Mapper{}, err
	}
	return viewport.New(e.viewportW, e.viewportH, img.Width(), img.Height()), nil
}

// MapViewportToRaster converts a pointer position to raster coordinates.
func (e *Editor) MapViewportToRaster(vx, vy float64) (int, int, error) {
	m, err := e.Mapper()
	if err != nil {
		return 0, 0, err
	}
	rx, ry := m.ToRaster(vx, vy)
	return rx, ry, nil
}

// MapRasterToViewport converts a raster position to viewport coordinates.
func (e *Editor) MapRasterToViewport(rx, ry int) (float64, float64, error) {
	m, err := e.Mapper()
	if err != nil {
		return 0, 0, err
	}
	vx, vy := m.ToViewport(float64(rx), float64(ry))
	return vx, vy, nil
}

// Zoom returns the preview zoom level.
func (e *Editor) Zoom() float64 { return e.zoom }

// ZoomIn raises the zoom by one step up to MaxZoom.
func (e *Editor) ZoomIn() { e.setZoom(e.zoom + ZoomStep) }

// ZoomOut lowers the zoom by one step down to MinZoom.
func (e *Editor) ZoomOut() { e.setZoom(e.zoom - ZoomStep) }

// ResetZoom returns to 1.0.
func (e *Editor) ResetZoom() { e.zoom = 1 }

func (e *Editor) setZoom(z float64) {
	// Round away float drift so repeated steps land on 0.2 multiples.
	z = math.Round(z*10) / 10
	e.zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
}

// ZoomPreview returns the active image fitted inside a square of side
// min(VW, VH)·zoom, keeping its aspect ratio.
func (e *Editor) ZoomPreview() (*raster.Image, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return nil, err
	}
	vw, vh := viewport.New(e.viewportW, e.viewportH, 1, 1).ViewportSize()
	side := max(1, int(float64(min(vw, vh))*e.zoom))
	dw, dh := viewport.New(side, side, img.Width(), img.Height()).DisplaySize()
	return img.Resize(dw, dh)
}

// =============================================================================
// Transforms
// =============================================================================

// Transform applies a flip or quarter rotation to the active image.
func (e *Editor) Transform(op pipeline.TransformOp) error {
	img, err := e.owner.Borrow()
	if err != nil {
		return err
	}
	e.owner.Replace(transform.Apply(img, op))
	return nil
}

// =============================================================================
// Circular crop
// =============================================================================

// CircleTool returns the interactive crop tool.
func (e *Editor) CircleTool() *circle.Tool { return e.circleTool }

// StartCircleCrop activates the crop tool on the active image.
func (e *Editor) StartCircleCrop() error {
	img, err := e.owner.Borrow()
	if err != nil {
		return err
	}
	return e.circleTool.Start(img)
}

// MoveCircle places the crop center under the pointer.
func (e *Editor) MoveCircle(vx, vy float64) error {
	m, err := e.Mapper()
	if err != nil {
		return err
	}
	if !e.circleTool.Move(m, vx, vy) {
		return circle.ErrNotActive
	}
	return nil
}

// SetCircleRadius moves the radius slider. The radius is clamped to the
// tool's range and the center re-clamped to keep the circle inside.
func (e *Editor) SetCircleRadius(r int) error {
	if e.circleTool.State() != circle.StateActive {
		return circle.ErrNotActive
	}
	e.circleTool.SetRadius(r)
	return nil
}

// NudgeCircle moves the crop center by (dx, dy) raster pixels, clamped like
// MoveCircle.
func (e *Editor) NudgeCircle(dx, dy int) error {
	s := e.circleTool.Spec()
	if !e.circleTool.MoveTo(s.CenterX+dx, s.CenterY+dy) {
		return circle.ErrNotActive
	}
	return nil
}

// ClickCircle commits the crop unless the click lands in the reserved control
// strip. It reports whether the crop was committed.
func (e *Editor) ClickCircle(vx float64) (bool, error) {
	m, err := e.Mapper()
	if err != nil {
		return false, err
	}
	if !e.circleTool.IsConfirmClick(m, vx) {
		return false, nil
	}
	img, _ := e.owner.Borrow()
	out, _, err := e.circleTool.Commit(img)
	if err != nil {
		return false, err
	}
	e.owner.Replace(out)
	return true, nil
}

// CancelCircleCrop abandons the uncommitted circle.
func (e *Editor) CancelCircleCrop() { e.circleTool.Cancel() }

// PriorCrop returns the last committed crop.
func (e *Editor) PriorCrop() circle.PriorCrop { return e.circleTool.Prior() }

// PreviewCircleCrop renders the active image at viewport scale with the
// circle outlined. The active image is unchanged.
func (e *Editor) PreviewCircleCrop(spec circle.Spec) (*raster.Image, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return nil, err
	}
	m := viewport.New(e.viewportW, e.viewportH, img.Width(), img.Height())
	return circle.Preview(img, spec, m, e.renderer)
}

// ApplyCircleCrop crops the active image to spec without the interactive
// tool and records spec as the prior crop.
func (e *Editor) ApplyCircleCrop(spec circle.Spec) error {
	img, err := e.owner.Borrow()
	if err != nil {
		return err
	}
	if err := e.circleTool.Start(img); err != nil {
		return err
	}
	if err := e.circleTool.Place(spec); err != nil {
		e.circleTool.Cancel()
		return err
	}
	out, _, err := e.circleTool.Commit(img)
	if err != nil {
		return err
	}
	e.owner.Replace(out)
	return nil
}

// =============================================================================
// Ring
// =============================================================================

// BuildRingComposite returns the ring composite of the active image using the
// prior crop. The active image is unchanged.
func (e *Editor) BuildRingComposite(style ring.Style) (*raster.Image, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return nil, err
	}
	return e.compositor.Build(img, e.PriorCrop(), style)
}

// RingSession starts an interactive ring session over the active image.
func (e *Editor) RingSession() (*ring.Session, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return nil, err
	}
	return ring.NewSession(e.compositor, img, e.PriorCrop())
}

// ApplyRing replaces the active image with its ring composite.
func (e *Editor) ApplyRing(style ring.Style) error {
	out, err := e.BuildRingComposite(style)
	if err != nil {
		return err
	}
	e.owner.Replace(out)
	return nil
}

// =============================================================================
// Broken variants
// =============================================================================

// ApplyAlphaTransplant returns the active image with reference's alpha. The
// active image is unchanged.
func (e *Editor) ApplyAlphaTransplant(reference *raster.Image) (*raster.Image, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return nil, err
	}
	return broken.Apply(img, reference)
}

// BrokenSession starts an eraser session whose base is a copy of the active
// image.
func (e *Editor) BrokenSession() (*broken.Session, error) {
	img, err := e.owner.Snapshot()
	if err != nil {
		return nil, err
	}
	return broken.NewSession(img)
}

// =============================================================================
// Painting
// =============================================================================

// PaintStroke applies tool at raster point (x, y) of the active image. It
// reports whether any pixel could be touched.
func (e *Editor) PaintStroke(tool paint.Tool, x, y int) (bool, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return false, err
	}
	return tool.Stroke(img, x, y), nil
}

// Mask returns the broken-mask canvas.
func (e *Editor) Mask() *paint.BinaryMask { return e.mask }

// SetMask replaces the broken-mask canvas, e.g. with a seeded one.
func (e *Editor) SetMask(m *paint.BinaryMask) { e.mask = m }

// PaintMaskStroke applies brush to the mask at mask point (x, y).
func (e *Editor) PaintMaskStroke(brush paint.MaskBrush, x, y int) bool {
	return e.mask.Stroke(brush, x, y)
}

// ExportMask returns the mask as a transparent image with opaque black
// broken regions.
func (e *Editor) ExportMask() *raster.Image {
	return e.mask.Export()
}

// ResizeTo64 returns the active image resized to 64×64.
func (e *Editor) ResizeTo64() (*raster.Image, error) {
	img, err := e.owner.Borrow()
	if err != nil {
		return nil, err
	}
	return img.ResizeTo64(), nil
}
