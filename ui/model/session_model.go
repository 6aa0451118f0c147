package model

import (
	"time"
)

// SessionModel tracks camera time for the current session and across sessions,
// along with per-session frame and face counters.
// Presenters poll Values()/Counts() and update views. The zero value is ready to use.
type SessionModel struct {
	active      bool
	start       time.Time
	lastSession time.Duration
	accumulated time.Duration
	frames      uint64
	faces       uint64
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates durations from the current capture state and timestamp.
func (m *SessionModel) OnTick(capturing bool, now time.Time) {
	if m == nil {
		return
	}
	if capturing {
		if !m.active { // off -> on
			m.active = true
			m.start = now
			m.lastSession = 0
			m.frames, m.faces = 0, 0
		}
		m.lastSession = now.Sub(m.start)
	} else if m.active { // on -> off
		m.lastSession = now.Sub(m.start)
		m.accumulated += m.lastSession
		m.active = false
	}
}

// Observe records the running session's loop counters.
func (m *SessionModel) Observe(frames, faces uint64) {
	if m == nil || !m.active {
		return
	}
	m.frames, m.faces = frames, faces
}

// Values returns the current session duration and the total accumulated duration.
// The total includes the ongoing session when active.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.lastSession
	total = m.accumulated
	if m.active {
		total += session
	}
	return
}

// Counts returns frames displayed and faces found in the last session.
func (m *SessionModel) Counts() (frames, faces uint64) {
	if m == nil {
		return 0, 0
	}
	return m.frames, m.faces
}
