package presenter

import (
	"log/slog"
	"sync"
)

// Action names a user command. Views bind widgets to actions; presenters
// register the handlers.
type Action string

const (
	ActionStartCamera   Action = "camera.start"
	ActionStopCamera    Action = "camera.stop"
	ActionUploadImage   Action = "image.upload"
	ActionRecordVoice   Action = "voice.record"
	ActionStopRecording Action = "voice.stop"
	ActionAnalyzeVoice  Action = "voice.analyze"
	ActionAnalyzeText   Action = "text.analyze"
	ActionSelection     Action = "screen.selection"
	ActionToggleTheme   Action = "theme.toggle"
	ActionExit          Action = "app.exit"
)

// Dispatcher maps actions to handlers. Handlers run on the caller's goroutine
// (the Tk event loop in production).
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Action]func()
	logger   *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{handlers: make(map[Action]func()), logger: logger}
}

// Register binds h to a, replacing any previous handler.
func (d *Dispatcher) Register(a Action, h func()) {
	if d == nil || h == nil {
		return
	}
	d.mu.Lock()
	d.handlers[a] = h
	d.mu.Unlock()
}

// Dispatch runs the handler bound to a. It reports false for unknown actions.
// A panicking handler is logged and does not take down the event loop.
func (d *Dispatcher) Dispatch(a Action) (ok bool) {
	if d == nil {
		return false
	}
	d.mu.RLock()
	h := d.handlers[a]
	d.mu.RUnlock()
	if h == nil {
		if d.logger != nil {
			d.logger.Error("unknown action", "action", string(a))
		}
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if d.logger != nil {
				d.logger.Error("action panic", "action", string(a), "error", r)
			}
		}
	}()
	h()
	return true
}

// Command returns a closure suitable for a widget command option.
func (d *Dispatcher) Command(a Action) func() {
	return func() { d.Dispatch(a) }
}
