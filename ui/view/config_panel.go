package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/emotion-lens/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the configuration form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
// Capture and detector edits take effect the next time the camera starts.
type ConfigPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int)
	SetEditable(enabled bool)
	ApplyChanges()
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by field id
}

func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(24))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("source", "Source (camera/screen)", c.Source)
	makeRow("cameraDevice", "Camera Device", strconv.Itoa(c.CameraDevice))
	makeRow("tickIntervalMs", "Tick Interval ms", strconv.Itoa(c.TickIntervalMs))
	makeRow("warnAfterMiss", "Warn After Missed Reads", strconv.Itoa(c.WarnAfterMiss))
	makeRow("cascadePath", "Cascade Path", c.CascadePath)
	makeRow("scaleFactor", "Scale Factor (>1)", fmt.Sprintf("%.2f", c.ScaleFactor))
	makeRow("minNeighbors", "Min Neighbors", strconv.Itoa(c.MinNeighbors))
	makeRow("minFacePx", "Min Face Px", strconv.Itoa(c.MinFacePx))
	makeRow("boxThickness", "Box Thickness", strconv.Itoa(c.BoxThickness))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg
	assignInt := func(id string, dst *int) {
		if s, ok := v.text(id); ok {
			if i, err := strconv.Atoi(s); err == nil {
				*dst = i
			}
		}
	}
	assignString := func(id string, dst *string) {
		if s, ok := v.text(id); ok && s != "" {
			*dst = s
		}
	}
	assignString("source", &cfg.Source)
	assignInt("cameraDevice", &cfg.CameraDevice)
	assignInt("tickIntervalMs", &cfg.TickIntervalMs)
	assignInt("warnAfterMiss", &cfg.WarnAfterMiss)
	assignString("cascadePath", &cfg.CascadePath)
	if s, ok := v.text("scaleFactor"); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			cfg.ScaleFactor = f
		}
	}
	assignInt("minNeighbors", &cfg.MinNeighbors)
	assignInt("minFacePx", &cfg.MinFacePx)
	assignInt("boxThickness", &cfg.BoxThickness)
	if err := cfg.Validate(); err != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		return
	}
	if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}
