package cascade

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/soocke/emotion-lens/domain/face"
)

func solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestGrayscale_UsesRGBLuminanceWeights(t *testing.T) {
	cases := []struct {
		name string
		c    color.RGBA
		want uint8 // 0.299 R + 0.587 G + 0.114 B
	}{
		{"red", color.RGBA{R: 255, A: 255}, 76},
		{"blue", color.RGBA{B: 255, A: 255}, 29},
	}
	for _, tc := range cases {
		gray, err := grayscale(solid(tc.c))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		got := gray.GetUCharAt(0, 0)
		gray.Close()
		if d := int(got) - int(tc.want); d < -1 || d > 1 {
			t.Fatalf("%s: gray=%d want ~%d", tc.name, got, tc.want)
		}
	}
}

func TestNew_MissingCascade(t *testing.T) {
	t.Setenv("OPENCV_DIR", t.TempDir())
	_, err := New(Config{Path: t.TempDir() + "/no_such_cascade.xml"})
	if !errors.Is(err, face.ErrCascadeNotFound) {
		t.Fatalf("expected ErrCascadeNotFound, got %v", err)
	}
}
