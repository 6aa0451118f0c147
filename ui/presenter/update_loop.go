package presenter

import "time"

// StatusSource provides the current status line.
type StatusSource interface{ Status() string }

// Loop aggregates feature presenters and drives periodic UI updates.
//
// It calls Tick/Poll on the sub-presenters, copies the status line to the
// view and invokes a scheduler callback. The zero value is usable (methods
// are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Text     *TextPresenter
	Status   StatusSource
	View     StatusSink
	Schedule func()

	lastStatus string
}

func NewLoop(sess *SessionPresenter, text *TextPresenter, status StatusSource, view StatusSink, schedule func()) *Loop {
	return &Loop{Session: sess, Text: text, Status: status, View: view, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Text != nil {
		l.Text.Poll()
	}
	if l.Status != nil && l.View != nil {
		if s := l.Status.Status(); s != l.lastStatus {
			l.lastStatus = s
			l.View.SetStatus(s)
		}
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
