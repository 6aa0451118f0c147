package model

import (
	"sync/atomic"
)

// CaptureModel tracks whether the camera loop is running. The zero value is stopped and usable.
// Concurrency-safe: Tk callbacks and loop callbacks may race when ticks run off the UI thread.
type CaptureModel struct {
	enabled atomic.Bool
	status  atomic.Value // string
}

// Enabled reports whether capture is currently running.
func (m *CaptureModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the running flag and clears the status line on change.
func (m *CaptureModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	if m.enabled.Swap(b) != b {
		m.status.Store("")
	}
}

// SetStatus records a short human readable status (e.g. a stall warning).
func (m *CaptureModel) SetStatus(s string) {
	if m == nil {
		return
	}
	m.status.Store(s)
}

// Status returns the last status text.
func (m *CaptureModel) Status() string {
	if m == nil {
		return ""
	}
	s, _ := m.status.Load().(string)
	return s
}
