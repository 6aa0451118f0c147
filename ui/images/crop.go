package images

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// CropBox returns a copy of the region r of frame grown by pad pixels on each side.
// The region is clamped to frame bounds and guaranteed to be at least 1x1.
// r is relative to frame.Bounds().Min. The returned rectangle is the clamped region.
func CropBox(frame *image.RGBA, r image.Rectangle, pad int) (*image.NRGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	b := frame.Bounds()
	local := image.Rect(0, 0, b.Dx(), b.Dy())
	if pad < 0 {
		pad = 0
	}
	r = r.Canon().Inset(-pad).Intersect(local)
	if r.Empty() {
		x, y := clamp(r.Min.X, 0, local.Max.X-1), clamp(r.Min.Y, 0, local.Max.Y-1)
		r = image.Rect(x, y, x+1, y+1)
	}
	return imaging.Crop(frame, r.Add(b.Min)), r, nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
