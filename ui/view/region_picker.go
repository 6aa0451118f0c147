package view

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/vova616/screenshot"

	"github.com/soocke/emotion-lens/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// RegionPicker frames the part of the screen the screen source watches, e.g.
// the participants of a video call. The see-through window body is the region.
type RegionPicker interface {
	OpenOrFocus()
	Clear()
	ActiveRect() *image.Rectangle
}

const keyColor = "#00ff7f" // made transparent by the window manager

type regionPicker struct {
	logger *slog.Logger
	cfg    *config.Config
	path   string
	region atomic.Pointer[image.Rectangle] // nil means full screen
	win    *ToplevelWidget
}

func NewRegionPicker(cfg *config.Config, cfgPath string, logger *slog.Logger) RegionPicker {
	p := &regionPicker{logger: logger, cfg: cfg, path: cfgPath}
	if cfg != nil && cfg.SelectionW > 0 && cfg.SelectionH > 0 {
		r := image.Rect(cfg.SelectionX, cfg.SelectionY, cfg.SelectionX+cfg.SelectionW, cfg.SelectionY+cfg.SelectionH)
		p.region.Store(&r)
	}
	return p
}

func (p *regionPicker) OpenOrFocus() {
	if p.win != nil {
		WmAttributes(p.win.Window, "-topmost", 1)
		return
	}
	win := App.Toplevel(Borderwidth(3), Background(keyColor))
	win.WmTitle("Frame the faces")
	p.win = win
	WmGeometry(win.Window, p.initialGeometry())
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-transparentcolor", keyColor)
	WmProtocol(win.Window, "WM_DELETE_WINDOW", p.close)

	GridRowConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	hint := win.Label(Txt("Move and resize this window over the faces to analyze"), Anchor("center"))
	Grid(hint, Row(0), Column(0), Sticky("we"))
	body := win.Frame(Background(keyColor), Highlightthickness(2), Highlightbackground("#dc2626"))
	Grid(body, Row(1), Column(0), Sticky("nsew"))

	bar := win.Frame()
	Grid(bar, Row(2), Column(0), Sticky("we"))
	for i, b := range []struct {
		label string
		fn    func()
	}{
		{"Use Region [Enter]", p.useRegion},
		{"Full Screen", p.fullScreen},
		{"Cancel [Esc]", p.close},
	} {
		Grid(win.Button(Txt(b.label), Command(b.fn)), In(bar), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}
	Bind(win, "<Return>", Command(p.useRegion))
	Bind(win, "<Escape>", Command(p.close))
}

// initialGeometry reopens on the stored region, else centres a window
// covering half the screen.
func (p *regionPicker) initialGeometry() string {
	if r := p.ActiveRect(); r != nil {
		return fmt.Sprintf("%dx%d+%d+%d", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
	}
	sw, sh := screenSize()
	w, h := max(sw/2, 1), max(sh/2, 1)
	return fmt.Sprintf("%dx%d+%d+%d", w, h, (sw-w)/2, (sh-h)/2)
}

func (p *regionPicker) useRegion() {
	if p.win == nil {
		return
	}
	r, ok := parseGeometry(WmGeometry(p.win.Window))
	if !ok {
		if p.logger != nil {
			p.logger.Warn("region: unreadable window geometry")
		}
		return
	}
	p.store(&r)
	p.close()
}

func (p *regionPicker) fullScreen() {
	p.Clear()
	p.close()
}

func (p *regionPicker) Clear() { p.store(nil) }

func (p *regionPicker) store(r *image.Rectangle) {
	p.region.Store(r)
	if p.cfg == nil {
		return
	}
	if r == nil {
		p.cfg.SelectionX, p.cfg.SelectionY, p.cfg.SelectionW, p.cfg.SelectionH = 0, 0, 0, 0
	} else {
		p.cfg.SelectionX, p.cfg.SelectionY, p.cfg.SelectionW, p.cfg.SelectionH = r.Min.X, r.Min.Y, r.Dx(), r.Dy()
	}
	if err := p.cfg.Save(p.path); err != nil && p.logger != nil {
		p.logger.Error("region save failed", "error", err)
	}
	if p.logger != nil {
		region := "full screen"
		if r != nil {
			region = r.String()
		}
		p.logger.Info("screen region set", "region", region)
	}
}

func (p *regionPicker) close() {
	if p.win != nil {
		Destroy(p.win)
		p.win = nil
	}
}

func (p *regionPicker) ActiveRect() *image.Rectangle {
	r := p.region.Load()
	if r == nil || r.Empty() {
		return nil
	}
	cp := *r
	return &cp
}

// screenSize returns the primary screen dimensions, falling back to 1920x1080.
func screenSize() (int, int) {
	r, err := screenshot.ScreenRect()
	if err != nil || r.Dx() <= 0 || r.Dy() <= 0 {
		return 1920, 1080
	}
	return r.Dx(), r.Dy()
}

// parseGeometry reads a Tk "WxH+X+Y" string.
func parseGeometry(g string) (image.Rectangle, bool) {
	var w, h, x, y int
	if n, err := fmt.Sscanf(g, "%dx%d+%d+%d", &w, &h, &x, &y); err != nil || n != 4 || w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
