package app

import (
	"log/slog"
	"sync"

	"github.com/soocke/emotion-lens/config"
	"github.com/soocke/emotion-lens/domain/face"
	"github.com/soocke/emotion-lens/domain/face/cascade"
)

// detector loads the cascade on first use and reloads it when the detector
// settings change. Load failures are returned, never cached.
type detector struct {
	cfg    *config.Config
	logger *slog.Logger

	mu     sync.Mutex
	loaded cascade.Config
	loc    *cascade.Locator
}

func newDetector(cfg *config.Config, logger *slog.Logger) *detector {
	return &detector{cfg: cfg, logger: logger}
}

func (d *detector) settings() cascade.Config {
	return cascade.Config{
		Path:         d.cfg.CascadePath,
		ScaleFactor:  d.cfg.ScaleFactor,
		MinNeighbors: d.cfg.MinNeighbors,
		MinSize:      d.cfg.MinFacePx,
	}
}

// Locator returns the current locator.
func (d *detector) Locator() (face.Locator, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	want := d.settings()
	if d.loc != nil && d.loaded == want {
		return d.loc, nil
	}
	loc, err := cascade.New(want)
	if err != nil {
		return nil, err
	}
	if d.loc != nil {
		_ = d.loc.Close()
	}
	d.loc, d.loaded = loc, want
	d.logger.Info("face detector loaded", "path", loc.Path(), "scale_factor", want.ScaleFactor, "min_neighbors", want.MinNeighbors)
	return loc, nil
}

// Style returns the annotation style for the configured box thickness.
func (d *detector) Style() face.Style {
	s := face.DefaultStyle()
	s.Thickness = d.cfg.BoxThickness
	return s
}

func (d *detector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loc != nil {
		_ = d.loc.Close()
		d.loc = nil
	}
}
