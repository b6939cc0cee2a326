package raster

import "errors"

// ErrEmpty is returned when the owner holds no image.
var ErrEmpty = errors.New("raster: no active image")

// Owner is the single holder of a pipeline stage's active image.
//
// Edits borrow the buffer for the duration of one call; operations that
// produce a new image hand it back through Replace, which returns the previous
// buffer so the caller decides whether to keep it as a preview baseline.
type Owner struct {
	img *Image
}

// NewOwner returns an owner holding img (which may be nil).
func NewOwner(img *Image) *Owner {
	return &Owner{img: img}
}

// Loaded reports whether an image is held.
func (o *Owner) Loaded() bool {
	return o.img != nil
}

// Borrow returns the active image for in-place mutation.
func (o *Owner) Borrow() (*Image, error) {
	if o.img == nil {
		return nil, ErrEmpty
	}
	return o.img, nil
}

// Snapshot returns a deep copy of the active image.
func (o *Owner) Snapshot() (*Image, error) {
	img, err := o.Borrow()
	if err != nil {
		return nil, err
	}
	return img.Clone(), nil
}

// Replace swaps in img and returns the previously held image.
func (o *Owner) Replace(img *Image) *Image {
	prev := o.img
	o.img = img
	return prev
}

// Take removes and returns the active image, leaving the owner empty.
func (o *Owner) Take() (*Image, error) {
	if o.img == nil {
		return nil, ErrEmpty
	}
	img := o.img
	o.img = nil
	return img, nil
}
