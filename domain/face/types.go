package face

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptyFrame is returned for nil or zero-size frames.
var ErrEmptyFrame = errors.New("face: empty frame")

// BoundingBox locates one detected face in frame coordinates.
type BoundingBox struct {
	X, Y, W, H int
}

// Rect converts the box to an image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// FromRect builds a box from a rectangle.
func FromRect(r image.Rectangle) BoundingBox {
	r = r.Canon()
	return BoundingBox{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Locator finds faces in a single frame. Results keep the detector's scan order.
type Locator interface {
	Locate(frame *image.RGBA) ([]BoundingBox, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(frame *image.RGBA) ([]BoundingBox, error)

func (f LocatorFunc) Locate(frame *image.RGBA) ([]BoundingBox, error) { return f(frame) }

// ValidateFrame rejects frames that cannot be searched or drawn on.
func ValidateFrame(frame *image.RGBA) error {
	if frame == nil {
		return ErrEmptyFrame
	}
	b := frame.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || len(frame.Pix) == 0 {
		return fmt.Errorf("%w: bounds %v", ErrEmptyFrame, b)
	}
	return nil
}

// ClipBoxes intersects every box with bounds and drops the ones left without area.
// Boxes are returned relative to bounds.Min, the same space the detector used.
func ClipBoxes(boxes []BoundingBox, bounds image.Rectangle) []BoundingBox {
	if len(boxes) == 0 {
		return nil
	}
	frame := image.Rect(0, 0, bounds.Dx(), bounds.Dy())
	out := make([]BoundingBox, 0, len(boxes))
	for _, b := range boxes {
		r := b.Rect().Canon().Intersect(frame)
		if r.Dx() <= 0 || r.Dy() <= 0 {
			continue
		}
		out = append(out, FromRect(r))
	}
	return out
}
