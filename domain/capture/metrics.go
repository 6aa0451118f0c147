package capture

import (
	"image"
	"time"

	"github.com/soocke/emotion-lens/domain/face"
)

// FrameSnapshot carries one annotated frame and its detections.
type FrameSnapshot struct {
	Image      *image.RGBA
	Source     *image.RGBA // unannotated frame, used for face crops
	Boxes      []face.BoundingBox
	CapturedAt time.Time
	Sequence   uint64
}

// CaptureStats summarises capture loop behaviour for instrumentation.
type CaptureStats struct {
	Frames      uint64
	Skipped     uint64
	Faces       uint64
	Misses      int // current run of consecutive failed reads
	AvgTick     time.Duration
	LastCapture time.Time
	Sequence    uint64
}
