package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/soocke/emotion-lens/domain/capture"
	"github.com/soocke/emotion-lens/domain/face"
	"github.com/soocke/emotion-lens/domain/still"
)

// UploadPresenter runs one-shot face location on an image picked by the user.
type UploadPresenter struct {
	Capturing func() bool
	Dialogs   Dialogs
	Locator   func() (face.Locator, error)
	Style     face.Style
	Surface   capture.Surface
	Status    StatusSink
	Load      func(path string) (*image.RGBA, error)
	logger    *slog.Logger
}

func NewUploadPresenter(capturing func() bool, dialogs Dialogs, locator func() (face.Locator, error), style face.Style, surface capture.Surface, status StatusSink, logger *slog.Logger) *UploadPresenter {
	return &UploadPresenter{
		Capturing: capturing,
		Dialogs:   dialogs,
		Locator:   locator,
		Style:     style,
		Surface:   surface,
		Status:    status,
		Load:      still.Load,
		logger:    logger,
	}
}

// Upload asks for a file and displays the annotated result.
// It refuses to run while the camera owns the preview.
func (p *UploadPresenter) Upload() {
	if p == nil || p.Dialogs == nil || p.Surface == nil {
		return
	}
	if p.Capturing != nil && p.Capturing() {
		p.Dialogs.Warning("Camera running", "Stop the camera before uploading an image.")
		return
	}
	path, ok := p.Dialogs.OpenImage()
	if !ok || path == "" {
		return
	}
	loc, err := p.Locator()
	if err != nil {
		p.fail("Face detector unavailable", err)
		return
	}
	load := p.Load
	if load == nil {
		load = still.Load
	}
	frame, err := load(path)
	if err != nil {
		p.fail("Cannot open image", err)
		return
	}
	res, err := still.Process(frame, loc, p.Style)
	if err != nil {
		p.fail("Detection failed", err)
		return
	}
	p.Surface.Publish(capture.FrameSnapshot{Image: res.Annotated, Source: res.Frame, Boxes: res.Boxes, CapturedAt: time.Now()})
	if p.Status != nil {
		p.Status.SetStatus(fmt.Sprintf("%s: %d face(s)", filepath.Base(path), len(res.Boxes)))
	}
	if p.logger != nil {
		p.logger.Info("image processed", "path", path, "faces", len(res.Boxes))
	}
}

func (p *UploadPresenter) fail(title string, err error) {
	if p.logger != nil {
		p.logger.Error("upload", "title", title, "error", err)
	}
	p.Dialogs.Error(title, err.Error())
}
