// Package screen captures the desktop (or a region of it) as a frame source.
package screen

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"

	"github.com/soocke/emotion-lens/domain/capture"
)

// Source grabs the full screen, or the rectangle returned by Selection when set.
type Source struct {
	Selection func() *image.Rectangle
	closed    bool
}

var _ capture.FrameSource = (*Source)(nil)

// Opener returns a capture.Opener that verifies the screen can be queried.
func Opener(selection func() *image.Rectangle) capture.Opener {
	return func() (capture.FrameSource, error) {
		r, err := screenshot.ScreenRect()
		if err != nil {
			return nil, fmt.Errorf("screen: %w", err)
		}
		if r.Empty() {
			return nil, fmt.Errorf("screen: no display")
		}
		return &Source{Selection: selection}, nil
	}
}

func (s *Source) Read() (*image.RGBA, error) {
	if s.closed {
		return nil, fmt.Errorf("screen: %w", capture.ErrDeviceLost)
	}
	if s.Selection != nil {
		if r := s.Selection(); r != nil && !r.Empty() {
			img, err := screenshot.CaptureRect(*r)
			if err != nil {
				return nil, fmt.Errorf("%w: selection %v: %v", capture.ErrNoFrame, *r, err)
			}
			return img, nil
		}
	}
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", capture.ErrNoFrame, err)
	}
	return img, nil
}

func (s *Source) Close() error {
	s.closed = true
	return nil
}
