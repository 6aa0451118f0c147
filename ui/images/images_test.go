package images

import (
	"image"
	"testing"
)

func TestCropBox_PadsAndClamps(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	crop, rect, err := CropBox(frame, image.Rect(30, 30, 70, 70), 5)
	if err != nil || crop == nil {
		t.Fatalf("expected crop, got err=%v", err)
	}
	if rect != image.Rect(25, 25, 75, 75) {
		t.Fatalf("unexpected rect %v", rect)
	}
	if crop.Bounds().Dx() != 50 || crop.Bounds().Dy() != 50 {
		t.Fatalf("unexpected crop size %v", crop.Bounds())
	}
}

func TestCropBox_ClampsNearEdge(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 20, 20))
	_, rect, err := CropBox(frame, image.Rect(15, 15, 30, 30), 4)
	if err != nil {
		t.Fatalf("crop error: %v", err)
	}
	if rect.Max.X > 20 || rect.Max.Y > 20 || rect.Min.X != 11 {
		t.Fatalf("rect not clamped: %v", rect)
	}
}

func TestCropBox_MinSize(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, rect, _ := CropBox(frame, image.Rect(50, 50, 60, 60), 0)
	if rect.Dx() != 1 || rect.Dy() != 1 {
		t.Fatalf("expected 1x1 got %dx%d", rect.Dx(), rect.Dy())
	}
}

func TestCropBox_NilFrame(t *testing.T) {
	if _, _, err := CropBox(nil, image.Rect(0, 0, 1, 1), 0); err == nil {
		t.Fatalf("expected error for nil frame")
	}
}

func TestScaleToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))
	out := ScaleToFit(src, 400, 400)
	if out.Bounds().Dx() != 400 || out.Bounds().Dy() != 200 {
		t.Fatalf("expected 400x200, got %v", out.Bounds())
	}
	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if ScaleToFit(small, 400, 400) != image.Image(small) {
		t.Fatalf("expected original returned when it fits")
	}
}

func TestEncodePNG(t *testing.T) {
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
	if b := EncodePNG(image.NewRGBA(image.Rect(0, 0, 2, 2))); len(b) == 0 {
		t.Fatalf("expected png bytes")
	}
}
