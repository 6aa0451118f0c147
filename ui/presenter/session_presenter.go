package presenter

import (
	"time"

	"github.com/soocke/emotion-lens/domain/capture"
	"github.com/soocke/emotion-lens/ui/model"
)

// CaptureEnabledModel reports whether capture is enabled.
type CaptureEnabledModel interface{ Enabled() bool }

// StatsSource exposes the running loop counters.
type StatsSource interface {
	Stats() capture.CaptureStats
}

// SessionView displays camera time and frame/face counters.
type SessionView interface {
	SetSession(session, total time.Duration)
	SetCounts(frames, faces uint64)
}

// SessionPresenter formats session durations and loop counters for the view.
type SessionPresenter struct {
	sess  *model.SessionModel
	cap   CaptureEnabledModel
	stats StatsSource
	view  SessionView
}

func NewSessionPresenter(sess *model.SessionModel, cap CaptureEnabledModel, stats StatsSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, cap: cap, stats: stats, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.cap == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.cap.Enabled(), now)
	if p.stats != nil {
		st := p.stats.Stats()
		p.sess.Observe(st.Frames, st.Faces)
	}
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
	p.view.SetCounts(p.sess.Counts())
}
