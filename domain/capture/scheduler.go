package capture

import "time"

// TimerScheduler schedules ticks on runtime timers. Ticks run on timer
// goroutines; the Session serialises them.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
