package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/emotion-lens/assets"
	"github.com/soocke/emotion-lens/config"
	"github.com/soocke/emotion-lens/domain/capture"
	"github.com/soocke/emotion-lens/domain/capture/camera"
	"github.com/soocke/emotion-lens/domain/capture/screen"
	"github.com/soocke/emotion-lens/domain/sentiment"
	"github.com/soocke/emotion-lens/domain/voice"
	"github.com/soocke/emotion-lens/ui/model"
	"github.com/soocke/emotion-lens/ui/presenter"
	"github.com/soocke/emotion-lens/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Capture  *model.CaptureModel
	Session  *model.SessionModel
	Faces    *model.FaceModel
	RootView *view.RootView
	Dialogs  *view.Dialogs
	Commands *presenter.Dispatcher

	detector *detector
	analyzer *sentiment.Analyzer

	// Presenters
	FramePresenter   *presenter.FramePresenter
	CapturePresenter *presenter.CapturePresenter
	UploadPresenter  *presenter.UploadPresenter
	TextPresenter    *presenter.TextPresenter
	VoicePresenter   *presenter.VoicePresenter
	SessionPresenter *presenter.SessionPresenter
}

// BuildContainer constructs all components. Widgets are created later by
// RootView.Build; presenters only hold the view pointer until then.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Capture = &model.CaptureModel{}
	c.Session = model.NewSessionModel()
	c.Faces = model.NewFaceModel()
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.Dialogs = view.NewDialogs(logger)
	c.Commands = presenter.NewDispatcher(logger)
	c.detector = newDetector(cfg, logger)

	clf := sentiment.NewHTTPClassifier(cfg.SentimentURL, os.Getenv(cfg.SentimentTokenEnv), cfg.SentimentTimeout())
	an, err := sentiment.NewAnalyzer(clf, assets.SentimentLabels(), cfg.SentimentCacheSize, logger)
	if err != nil {
		return nil, fmt.Errorf("sentiment analyzer: %w", err)
	}
	c.analyzer = an

	c.FramePresenter = presenter.NewFramePresenter(c.RootView, c.Faces)
	c.CapturePresenter = presenter.NewCapturePresenter(c.Capture, c.startSession, capture.Options{}, c.RootView, c.Dialogs, c.FramePresenter, logger)
	c.CapturePresenter.Preflight = func() error {
		_, err := c.detector.Locator()
		return err
	}
	c.UploadPresenter = presenter.NewUploadPresenter(c.Capture.Enabled, c.Dialogs, c.detector.Locator, c.detector.Style(), c.FramePresenter, c.Capture, logger)
	c.TextPresenter = presenter.NewTextPresenter(c.RootView, c.analyzer, c.Dialogs, c.RootView, cfg.SentimentTimeout(), logger)
	var unimplemented voice.Unimplemented
	c.VoicePresenter = presenter.NewVoicePresenter(unimplemented, unimplemented, c.Dialogs, c.Capture, logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Capture, c.CapturePresenter, c.RootView)
	return c, nil
}

// startSession opens the configured frame source and starts the tick loop
// on the Tk event loop.
func (c *AppContainer) startSession(opts capture.Options) (*capture.Session, error) {
	loc, err := c.detector.Locator()
	if err != nil {
		return nil, err
	}
	opts.Interval = c.Config.TickInterval()
	opts.WarnAfter = c.Config.WarnAfterMiss
	opts.Style = c.detector.Style()
	return capture.Start(capture.Deps{
		Open:     c.opener(),
		Locator:  loc,
		Surface:  c.FramePresenter,
		Schedule: view.TkScheduler{},
		Logger:   c.Logger,
	}, opts)
}

func (c *AppContainer) opener() capture.Opener {
	if c.Config.Source == config.SourceScreen {
		return screen.Opener(c.RootView.SelectionRect)
	}
	return camera.Opener(c.Config.CameraDevice)
}

// RegisterActions binds every user action to its presenter.
func (c *AppContainer) RegisterActions(exit, toggleTheme func()) {
	d := c.Commands
	d.Register(presenter.ActionStartCamera, c.CapturePresenter.Enable)
	d.Register(presenter.ActionStopCamera, c.CapturePresenter.Disable)
	d.Register(presenter.ActionUploadImage, func() {
		c.UploadPresenter.Style = c.detector.Style()
		c.UploadPresenter.Upload()
	})
	d.Register(presenter.ActionRecordVoice, c.VoicePresenter.Record)
	d.Register(presenter.ActionStopRecording, c.VoicePresenter.StopRecording)
	d.Register(presenter.ActionAnalyzeVoice, c.VoicePresenter.Analyze)
	d.Register(presenter.ActionAnalyzeText, c.TextPresenter.Analyze)
	d.Register(presenter.ActionSelection, func() {
		if c.RootView.Selection != nil {
			c.RootView.Selection.OpenOrFocus()
		}
	})
	d.Register(presenter.ActionToggleTheme, toggleTheme)
	d.Register(presenter.ActionExit, exit)
}

// Shutdown stops any running session and releases the detector.
func (c *AppContainer) Shutdown() {
	c.CapturePresenter.Disable()
	c.detector.Close()
}
