package view

import (
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TkScheduler runs callbacks on the Tk event loop via `after`.
type TkScheduler struct{}

func (TkScheduler) After(d time.Duration, fn func()) (cancel func()) {
	id := TclAfter(d, fn)
	return func() { TclAfterCancel(id) }
}
