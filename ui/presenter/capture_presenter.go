package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/emotion-lens/domain/capture"
)

// CaptureModel provides running state and status text.
type CaptureModel interface {
	Enabled() bool
	SetEnabled(bool)
	SetStatus(string)
}

// StartFunc opens a capture session with the presenter's callbacks installed.
type StartFunc func(opts capture.Options) (*capture.Session, error)

// CaptureView updates UI elements affected by starting or stopping the camera.
type CaptureView interface {
	PreviewReset()
	ConfigEditable(bool)
}

// FrameResetter clears detection state when the session ends.
type FrameResetter interface{ Reset() }

// CapturePresenter owns the active capture session. It is the only holder of
// the *capture.Session; start and stop go through it.
type CapturePresenter struct {
	model   CaptureModel
	start   StartFunc
	opts    capture.Options
	view    CaptureView
	dialogs Dialogs
	frames  FrameResetter
	logger  *slog.Logger

	// Preflight, when set, must succeed before a session is opened.
	Preflight func() error

	session *capture.Session
}

func NewCapturePresenter(model CaptureModel, start StartFunc, opts capture.Options, view CaptureView, dialogs Dialogs, frames FrameResetter, logger *slog.Logger) *CapturePresenter {
	return &CapturePresenter{model: model, start: start, opts: opts, view: view, dialogs: dialogs, frames: frames, logger: logger}
}

// Enable starts a session. Idempotent. A device that cannot be opened is
// reported with an error dialog and leaves the presenter stopped.
func (c *CapturePresenter) Enable() {
	if c == nil || c.model == nil || c.start == nil || c.view == nil {
		return
	}
	if c.model.Enabled() {
		return
	}
	if c.Preflight != nil {
		if err := c.Preflight(); err != nil {
			c.showError("Face detector unavailable", err)
			return
		}
	}
	opts := c.opts
	opts.OnStall = c.onStall
	opts.OnRecover = c.onRecover
	opts.OnEnd = c.onEnd
	sess, err := c.start(opts)
	if err != nil {
		c.showError("Camera unavailable", err)
		return
	}
	c.session = sess
	c.model.SetEnabled(true)
	c.view.ConfigEditable(false)
}

// Disable stops the session and resets the preview. Idempotent.
func (c *CapturePresenter) Disable() {
	if c == nil || c.model == nil || c.view == nil {
		return
	}
	if !c.model.Enabled() {
		return
	}
	c.session.Stop()
	c.reset()
}

// Toggle flips running state delegating to Enable/Disable.
func (c *CapturePresenter) Toggle() {
	if c == nil || c.model == nil {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}

// Session returns the active session or nil.
func (c *CapturePresenter) Session() *capture.Session {
	if c == nil {
		return nil
	}
	return c.session
}

// Stats returns the active session's counters (zero when stopped).
func (c *CapturePresenter) Stats() capture.CaptureStats { return c.Session().Stats() }

func (c *CapturePresenter) reset() {
	c.session = nil
	c.model.SetEnabled(false)
	c.view.PreviewReset()
	c.view.ConfigEditable(true)
	if c.frames != nil {
		c.frames.Reset()
	}
}

func (c *CapturePresenter) onStall(misses int) {
	c.model.SetStatus(fmt.Sprintf("No frames from camera (%d missed reads)", misses))
}

func (c *CapturePresenter) onRecover(int) {
	c.model.SetStatus("")
}

func (c *CapturePresenter) onEnd(err error) {
	if c.session == nil {
		return
	}
	c.reset()
	c.showError("Camera lost", err)
}

func (c *CapturePresenter) showError(title string, err error) {
	if c.logger != nil {
		c.logger.Error("capture", "title", title, "error", err)
	}
	if c.dialogs != nil {
		c.dialogs.Error(title, err.Error())
	}
}
