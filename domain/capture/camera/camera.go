// Package camera reads frames from a local video device through OpenCV.
package camera

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"gocv.io/x/gocv"

	"github.com/soocke/emotion-lens/domain/capture"
)

// Camera is a capture.FrameSource backed by gocv.VideoCapture.
type Camera struct {
	device int
	vc     *gocv.VideoCapture
	buf    gocv.Mat
	mu     sync.Mutex
	closed bool
}

var _ capture.FrameSource = (*Camera)(nil)

// Open opens the video device with the given index.
func Open(device int) (*Camera, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("open video device %d: %w", device, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("video device %d not opened", device)
	}
	return &Camera{device: device, vc: vc, buf: gocv.NewMat()}, nil
}

// Opener returns a capture.Opener for the device.
func Opener(device int) capture.Opener {
	return func() (capture.FrameSource, error) {
		c, err := Open(device)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Read grabs the next frame. An empty read is reported as capture.ErrNoFrame.
func (c *Camera) Read() (*image.RGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, fmt.Errorf("video device %d: %w", c.device, capture.ErrDeviceLost)
	}
	if !c.vc.IsOpened() {
		return nil, fmt.Errorf("video device %d closed by driver: %w", c.device, capture.ErrDeviceLost)
	}
	if ok := c.vc.Read(&c.buf); !ok || c.buf.Empty() {
		return nil, capture.ErrNoFrame
	}
	img, err := c.buf.ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", capture.ErrNoFrame, err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}

// Close releases the device. Safe to call more than once.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.buf.Close()
	return c.vc.Close()
}
