// Package still runs face location and annotation once on an image file.
package still

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/soocke/emotion-lens/domain/face"
)

// ErrUnsupportedFormat rejects files other than PNG and JPEG.
var ErrUnsupportedFormat = errors.New("still: unsupported image format")

// Extensions lists the accepted file extensions.
var Extensions = []string{".png", ".jpg", ".jpeg"}

// Supported reports whether path has an accepted extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load decodes a PNG or JPEG file into an RGBA frame, applying EXIF orientation.
func Load(path string) (*image.RGBA, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", filepath.Base(path), err)
	}
	return toRGBA(img), nil
}

// Result is one processed still image.
type Result struct {
	Frame     *image.RGBA
	Annotated *image.RGBA
	Boxes     []face.BoundingBox
}

// Process locates faces in frame and draws them, exactly as one capture tick would.
func Process(frame *image.RGBA, loc face.Locator, style face.Style) (Result, error) {
	if err := face.ValidateFrame(frame); err != nil {
		return Result{}, err
	}
	if loc == nil {
		return Result{}, errors.New("still: nil locator")
	}
	boxes, err := loc.Locate(frame)
	if err != nil {
		return Result{}, fmt.Errorf("locate faces: %w", err)
	}
	return Result{Frame: frame, Annotated: face.Annotate(frame, boxes, style), Boxes: boxes}, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
