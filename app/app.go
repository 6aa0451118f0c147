package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/emotion-lens/config"
	"github.com/soocke/emotion-lens/ui/presenter"
	"github.com/soocke/emotion-lens/ui/theme"
)

// tick is the UI refresh period for status, statistics and text results.
const tick = 250 * time.Millisecond

type app struct {
	title   string
	width   int
	height  int
	logger  *slog.Logger
	c       *AppContainer
	loop    *presenter.Loop
	afterID string
	exiting bool
}

func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, cfgPath, logger)
	if err != nil {
		return nil, err
	}
	a := &app{title: title, width: width, height: height, logger: logger, c: c}
	c.RegisterActions(a.exitHandler, a.toggleTheme)
	a.loop = presenter.NewLoop(c.SessionPresenter, c.TextPresenter, c.Capture, c.RootView, a.scheduleUpdate)
	return a, nil
}

// Start builds the window and blocks in the Tk event loop until exit.
func (a *app) Start() {
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", a.width, a.height))
	theme.InitStyles()
	a.c.RootView.Build(a.c.Commands.Command)
	a.c.RootView.ConfigEditable(true)
	a.logger.Info("app started", "source", a.c.Config.Source)
	a.scheduleUpdate()
	App.Wait()
}

func (a *app) scheduleUpdate() {
	if a.exiting {
		return
	}
	a.afterID = TclAfter(tick, a.loop.Tick)
}

func (a *app) toggleTheme() {
	dark := theme.ToggleDark()
	a.logger.Debug("theme toggled", "dark", dark)
}

func (a *app) exitHandler() {
	if a.exiting {
		return
	}
	a.exiting = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.c.Shutdown()
	a.logger.Info("app exit")
	Destroy(App)
}
