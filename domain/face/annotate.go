package face

import (
	"image"
	"image/color"
	"image/draw"
)

// Style controls the box outline drawn by Annotate.
type Style struct {
	Color     color.RGBA
	Thickness int
}

// DefaultStyle draws 2px red outlines.
func DefaultStyle() Style {
	return Style{Color: color.RGBA{R: 255, A: 255}, Thickness: 2}
}

// Annotate returns a copy of frame with an outline drawn around every box.
// The input frame is never modified; with no boxes the copy is pixel-identical.
// Box coordinates are relative to frame.Bounds().Min.
func Annotate(frame *image.RGBA, boxes []BoundingBox, style Style) *image.RGBA {
	if frame == nil {
		return nil
	}
	b := frame.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), frame, b.Min, draw.Src)
	if len(boxes) == 0 {
		return out
	}
	t := style.Thickness
	if t < 1 {
		t = 1
	}
	src := image.NewUniform(style.Color)
	for _, box := range boxes {
		r := box.Rect().Canon().Intersect(out.Bounds())
		if r.Empty() {
			continue
		}
		edge := t
		if edge > r.Dx()/2+1 || edge > r.Dy()/2+1 {
			// tiny box: fill it
			draw.Draw(out, r, src, image.Point{}, draw.Src)
			continue
		}
		top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+edge)
		bottom := image.Rect(r.Min.X, r.Max.Y-edge, r.Max.X, r.Max.Y)
		left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+edge, r.Max.Y)
		right := image.Rect(r.Max.X-edge, r.Min.Y, r.Max.X, r.Max.Y)
		for _, side := range []image.Rectangle{top, bottom, left, right} {
			draw.Draw(out, side, src, image.Point{}, draw.Src)
		}
	}
	return out
}
