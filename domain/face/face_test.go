package face

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func gradientFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 7), uint8(y * 11), uint8(x + y), 255})
		}
	}
	return img
}

func TestAnnotate_NoBoxesIsIdenticalCopy(t *testing.T) {
	frame := gradientFrame(32, 24)
	out := Annotate(frame, nil, DefaultStyle())
	if out == frame {
		t.Fatalf("expected a copy, got the same pointer")
	}
	if !bytes.Equal(out.Pix, frame.Pix) || out.Bounds() != frame.Bounds() {
		t.Fatalf("annotated frame differs from input with no boxes")
	}
}

func TestAnnotate_DoesNotMutateInput(t *testing.T) {
	frame := gradientFrame(40, 40)
	before := append([]byte(nil), frame.Pix...)
	out := Annotate(frame, []BoundingBox{{X: 5, Y: 5, W: 20, H: 20}}, DefaultStyle())
	if !bytes.Equal(before, frame.Pix) {
		t.Fatalf("input frame was mutated")
	}
	if got := out.RGBAAt(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("expected outline at box corner, got %v", got)
	}
	if got := out.RGBAAt(15, 15); got != frame.RGBAAt(15, 15) {
		t.Fatalf("box interior should be untouched, got %v", got)
	}
}

func TestAnnotate_ClampsOutOfBoundsBox(t *testing.T) {
	frame := gradientFrame(10, 10)
	out := Annotate(frame, []BoundingBox{{X: 6, Y: 6, W: 30, H: 30}}, Style{Color: color.RGBA{G: 255, A: 255}, Thickness: 1})
	if out.Bounds() != frame.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}
	if got := out.RGBAAt(6, 6); got != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("expected outline inside frame, got %v", got)
	}
}

func TestValidateFrame(t *testing.T) {
	if err := ValidateFrame(nil); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("nil frame: expected ErrEmptyFrame, got %v", err)
	}
	if err := ValidateFrame(image.NewRGBA(image.Rect(0, 0, 0, 10))); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("zero width: expected ErrEmptyFrame, got %v", err)
	}
	if err := ValidateFrame(gradientFrame(2, 2)); err != nil {
		t.Fatalf("valid frame rejected: %v", err)
	}
}

func TestClipBoxes_KeepsBoxesInsideFrame(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 80)
	in := []BoundingBox{
		{X: 10, Y: 10, W: 20, H: 20},  // inside
		{X: 90, Y: 70, W: 30, H: 30},  // overlaps corner
		{X: 200, Y: 10, W: 10, H: 10}, // outside
		{X: 5, Y: 5, W: 0, H: 10},     // degenerate
		{X: -5, Y: -5, W: 10, H: 10},  // negative origin
	}
	out := ClipBoxes(in, bounds)
	if len(out) != 3 {
		t.Fatalf("expected 3 boxes, got %d: %+v", len(out), out)
	}
	for _, b := range out {
		if b.W <= 0 || b.H <= 0 {
			t.Fatalf("non-positive box %+v", b)
		}
		if b.X < 0 || b.Y < 0 || b.X+b.W > 100 || b.Y+b.H > 80 {
			t.Fatalf("box escapes frame: %+v", b)
		}
	}
	if out[0] != in[0] {
		t.Fatalf("scan order not preserved: %+v", out)
	}
}
