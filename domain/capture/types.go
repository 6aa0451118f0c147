package capture

import (
	"errors"
	"image"
	"time"
)

var (
	// ErrNoFrame reports a transient read miss; the loop skips the tick.
	ErrNoFrame = errors.New("capture: no frame")
	// ErrDeviceUnavailable wraps failures to open a frame source.
	ErrDeviceUnavailable = errors.New("capture: device unavailable")
	// ErrDeviceLost ends the active session.
	ErrDeviceLost = errors.New("capture: device lost")
)

// FrameSource produces frames on demand. It is owned by exactly one Session.
type FrameSource interface {
	Read() (*image.RGBA, error)
	Close() error
}

// Opener opens a fresh FrameSource for a session.
type Opener func() (FrameSource, error)

// Scheduler runs fn once after d. The returned cancel prevents a pending run.
// Implementations must not invoke fn synchronously from After.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Surface receives annotated frames for display. Publish runs inside the
// tick and must not call Session.Stop.
type Surface interface {
	Publish(snap FrameSnapshot)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(snap FrameSnapshot)

func (f SurfaceFunc) Publish(snap FrameSnapshot) { f(snap) }

