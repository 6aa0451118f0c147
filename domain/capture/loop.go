package capture

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/emotion-lens/domain/face"
)

const (
	DefaultInterval  = 30 * time.Millisecond
	DefaultWarnAfter = 30
	minDelay         = time.Millisecond
)

// Deps are the collaborators a Session drives on every tick.
type Deps struct {
	Open     Opener
	Locator  face.Locator
	Surface  Surface
	Schedule Scheduler
	Logger   *slog.Logger
}

// Options tune the loop. Zero values fall back to defaults.
type Options struct {
	Interval  time.Duration
	WarnAfter int // consecutive misses before OnStall fires
	Style     face.Style
	OnStall   func(misses int)
	OnRecover func(misses int) // first good frame after OnStall
	OnEnd     func(err error) // device lost; the session is already released
}

// Session binds an open frame source to a running tick schedule.
// Create with Start; release with Stop.
type Session struct {
	id     string
	deps   Deps
	opts   Options
	logger *slog.Logger

	mu     sync.Mutex // guards src and cancel; held for a whole tick
	src    FrameSource
	cancel func()

	stopped   atomic.Bool
	closeOnce sync.Once

	misses    int // tick-owned
	warned    bool
	stalled   int // OnStall argument pending until the tick unlocks
	recovered int // OnRecover argument pending until the tick unlocks

	frames    atomic.Uint64
	skipped   atomic.Uint64
	faces     atomic.Uint64
	ticks     atomic.Uint64
	tickNanos atomic.Uint64
	sequence  atomic.Uint64
	lastFrame atomic.Int64
	streak    atomic.Int64
}

// Start opens the frame source and schedules the first tick.
func Start(deps Deps, opts Options) (*Session, error) {
	if deps.Open == nil || deps.Locator == nil || deps.Surface == nil || deps.Schedule == nil {
		return nil, errors.New("capture: incomplete dependencies")
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.WarnAfter <= 0 {
		opts.WarnAfter = DefaultWarnAfter
	}
	if opts.Style.Thickness <= 0 {
		opts.Style = face.DefaultStyle()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	src, err := deps.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	if src == nil {
		return nil, ErrDeviceUnavailable
	}

	s := &Session{id: uuid.NewString(), deps: deps, opts: opts, src: src}
	s.logger = logger.With("session", s.id)
	s.mu.Lock()
	s.cancel = deps.Schedule.After(opts.Interval, s.tick)
	s.mu.Unlock()
	s.logger.Info("capture.start", "interval", opts.Interval)
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Active reports whether the session still owns its source.
func (s *Session) Active() bool { return s != nil && !s.stopped.Load() }

// Stop cancels the pending tick and releases the source. It is idempotent and
// nil-safe. No frame is published after Stop returns.
func (s *Session) Stop() {
	if s == nil {
		return
	}
	if s.shutdown() {
		s.logger.Info("capture.stop", "frames", s.frames.Load(), "skipped", s.skipped.Load())
	}
}

// Stats returns a snapshot of loop counters.
func (s *Session) Stats() CaptureStats {
	if s == nil {
		return CaptureStats{}
	}
	var avg time.Duration
	if n := s.ticks.Load(); n > 0 {
		avg = time.Duration(s.tickNanos.Load() / n)
	}
	var last time.Time
	if ns := s.lastFrame.Load(); ns > 0 {
		last = time.Unix(0, ns)
	}
	return CaptureStats{
		Frames:      s.frames.Load(),
		Skipped:     s.skipped.Load(),
		Faces:       s.faces.Load(),
		Misses:      int(s.streak.Load()),
		AvgTick:     avg,
		LastCapture: last,
		Sequence:    s.sequence.Load(),
	}
}

func (s *Session) shutdown() bool {
	if !s.stopped.CompareAndSwap(false, true) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.release()
	return true
}

func (s *Session) release() {
	s.closeOnce.Do(func() {
		if err := s.src.Close(); err != nil {
			s.logger.Error("capture.release", "error", err)
		}
	})
}

func (s *Session) tick() {
	s.mu.Lock()
	if s.stopped.Load() {
		s.mu.Unlock()
		return
	}
	start := time.Now()
	err := s.step()
	elapsed := time.Since(start)
	s.ticks.Add(1)
	s.tickNanos.Add(uint64(elapsed.Nanoseconds()))
	if err != nil {
		s.mu.Unlock()
		s.end(err)
		return
	}
	if !s.stopped.Load() {
		next := s.opts.Interval - elapsed
		if next < minDelay {
			next = minDelay
		}
		s.cancel = s.deps.Schedule.After(next, s.tick)
	}
	stalled, recovered := s.stalled, s.recovered
	s.stalled, s.recovered = 0, 0
	s.mu.Unlock()
	if stalled > 0 && s.opts.OnStall != nil {
		s.opts.OnStall(stalled)
	}
	if recovered > 0 && s.opts.OnRecover != nil {
		s.opts.OnRecover(recovered)
	}
}

// step processes one frame. It returns an error only when the session must end.
func (s *Session) step() error {
	frame, err := s.src.Read()
	if errors.Is(err, ErrDeviceLost) {
		return err
	}
	if err != nil || frame == nil {
		s.miss(err)
		return nil
	}
	if s.misses > 0 {
		if s.warned {
			s.logger.Info("capture.recovered", "misses", s.misses)
			s.recovered = s.misses
		}
		s.misses, s.warned = 0, false
		s.streak.Store(0)
	}

	boxes, err := s.deps.Locator.Locate(frame)
	if err != nil {
		s.logger.Error("capture.locate", "error", err)
		boxes = nil
	}
	annotated := face.Annotate(frame, boxes, s.opts.Style)

	// Stop may have raced the work above when ticks run off the UI thread.
	if s.stopped.Load() {
		return nil
	}
	now := time.Now()
	seq := s.sequence.Add(1)
	s.frames.Add(1)
	s.faces.Add(uint64(len(boxes)))
	s.lastFrame.Store(now.UnixNano())
	s.deps.Surface.Publish(FrameSnapshot{Image: annotated, Source: frame, Boxes: boxes, CapturedAt: now, Sequence: seq})
	return nil
}

func (s *Session) miss(err error) {
	s.skipped.Add(1)
	s.misses++
	s.streak.Store(int64(s.misses))
	if s.misses == s.opts.WarnAfter && !s.warned {
		s.warned = true
		s.logger.Warn("capture.stalled", "misses", s.misses, "error", err)
		s.stalled = s.misses
	}
}

func (s *Session) end(err error) {
	if !s.shutdown() {
		return
	}
	s.logger.Error("capture.lost", "error", err)
	if s.opts.OnEnd != nil {
		s.opts.OnEnd(err)
	}
}
