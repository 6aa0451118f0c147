package still

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/emotion-lens/domain/face"
)

func writeImage(t *testing.T, name string, enc func(f *os.File, img image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for x := 0; x < 20; x++ {
		img.SetRGBA(x, 5, color.RGBA{0, 200, 0, 255})
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := enc(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_PNGAndJPEG(t *testing.T) {
	pngPath := writeImage(t, "a.png", func(f *os.File, img image.Image) error { return png.Encode(f, img) })
	jpgPath := writeImage(t, "b.JPG", func(f *os.File, img image.Image) error { return jpeg.Encode(f, img, nil) })
	for _, p := range []string{pngPath, jpgPath} {
		frame, err := Load(p)
		if err != nil {
			t.Fatalf("load %s: %v", p, err)
		}
		if frame.Bounds().Dx() != 20 || frame.Bounds().Dy() != 10 {
			t.Fatalf("unexpected bounds %v", frame.Bounds())
		}
	}
}

func TestLoad_RejectsOtherFormats(t *testing.T) {
	if _, err := Load("face.gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestProcess_UsesLocatorAndAnnotator(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 30, 30))
	calls := 0
	loc := face.LocatorFunc(func(*image.RGBA) ([]face.BoundingBox, error) {
		calls++
		return []face.BoundingBox{{X: 2, Y: 2, W: 10, H: 10}}, nil
	})
	res, err := Process(frame, loc, face.DefaultStyle())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if calls != 1 || len(res.Boxes) != 1 {
		t.Fatalf("expected one locate call and one box, got calls=%d boxes=%d", calls, len(res.Boxes))
	}
	if res.Annotated.RGBAAt(2, 2) != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("box not drawn")
	}
	if frame.RGBAAt(2, 2) != (color.RGBA{}) {
		t.Fatalf("input frame mutated")
	}
}

func TestProcess_EmptyFrame(t *testing.T) {
	_, err := Process(&image.RGBA{}, face.LocatorFunc(func(*image.RGBA) ([]face.BoundingBox, error) { return nil, nil }), face.DefaultStyle())
	if !errors.Is(err, face.ErrEmptyFrame) {
		t.Fatalf("expected ErrEmptyFrame, got %v", err)
	}
}
