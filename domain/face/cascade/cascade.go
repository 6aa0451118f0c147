// Package cascade locates faces with an OpenCV Haar cascade classifier.
package cascade

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/soocke/emotion-lens/domain/face"
)

// Config holds the detector tuning constants.
type Config struct {
	Path         string  // cascade XML, e.g. haarcascade_frontalface_default.xml
	ScaleFactor  float64 // image pyramid step, must be > 1
	MinNeighbors int
	MinSize      int // smallest face side in pixels; 0 disables
}

// Locator wraps a loaded gocv.CascadeClassifier.
type Locator struct {
	classifier gocv.CascadeClassifier
	cfg        Config
	mu         sync.Mutex // classifier is not safe for concurrent use
	closed     bool
}

var _ face.Locator = (*Locator)(nil)

// New loads the cascade file, falling back to OpenCV's installed data
// directories when cfg.Path does not exist. The caller must Close the locator.
func New(cfg Config) (*Locator, error) {
	path, err := face.FindCascade(cfg.Path, face.CascadeDirs())
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	if cfg.ScaleFactor <= 1 {
		cfg.ScaleFactor = 1.3
	}
	if cfg.MinNeighbors < 0 {
		cfg.MinNeighbors = 5
	}
	c := gocv.NewCascadeClassifier()
	if !c.Load(cfg.Path) {
		c.Close()
		return nil, fmt.Errorf("error reading cascade file: %s", cfg.Path)
	}
	return &Locator{classifier: c, cfg: cfg}, nil
}

// Locate runs detectMultiScale on a grayscale copy of frame.
func (l *Locator) Locate(frame *image.RGBA) ([]face.BoundingBox, error) {
	if err := face.ValidateFrame(frame); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, fmt.Errorf("cascade: locator closed")
	}

	gray, err := grayscale(frame)
	if err != nil {
		return nil, err
	}
	defer gray.Close()

	minSize := image.Point{}
	if l.cfg.MinSize > 0 {
		minSize = image.Pt(l.cfg.MinSize, l.cfg.MinSize)
	}
	rects := l.classifier.DetectMultiScaleWithParams(gray, l.cfg.ScaleFactor, l.cfg.MinNeighbors, 0, minSize, image.Point{})

	boxes := make([]face.BoundingBox, 0, len(rects))
	for _, r := range rects {
		boxes = append(boxes, face.FromRect(r))
	}
	return face.ClipBoxes(boxes, frame.Bounds()), nil
}

// grayscale converts frame to a single-channel Mat. The caller closes it.
func grayscale(frame *image.RGBA) (gocv.Mat, error) {
	// ImageToMatRGB yields OpenCV's BGR channel order.
	bgr, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("convert frame: %w", err)
	}
	defer bgr.Close()

	gray := gocv.NewMat()
	gocv.CvtColor(bgr, &gray, gocv.ColorBGRToGray)
	if gray.Empty() {
		gray.Close()
		return gocv.Mat{}, fmt.Errorf("%w: grayscale conversion produced no data", face.ErrEmptyFrame)
	}
	return gray, nil
}

// Path returns the cascade file that was loaded.
func (l *Locator) Path() string { return l.cfg.Path }

// Close releases the classifier. Safe to call more than once.
func (l *Locator) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.classifier.Close()
}
