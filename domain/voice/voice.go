// Package voice declares the voice emotion capability. No model ships with
// the application, so the only implementation reports ErrNotImplemented.
package voice

import (
	"context"
	"errors"
	"time"

	"github.com/soocke/emotion-lens/domain/sentiment"
)

var (
	// ErrNotImplemented is returned by every operation of Unimplemented.
	ErrNotImplemented = errors.New("voice emotion detection is not implemented")
	// ErrEmptyClip is returned by analyzers given no samples.
	ErrEmptyClip = errors.New("voice: empty audio clip")
)

// AudioClip is mono PCM audio.
type AudioClip struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the clip length.
func (c AudioClip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}

// Recorder captures audio between Start and Stop.
type Recorder interface {
	Start() error
	Stop() (AudioClip, error)
}

// Analyzer classifies the emotion carried by a clip.
type Analyzer interface {
	Analyze(ctx context.Context, clip AudioClip) (sentiment.Result, error)
}

// Unimplemented satisfies Recorder and Analyzer and fails loudly.
type Unimplemented struct{}

var (
	_ Recorder = Unimplemented{}
	_ Analyzer = Unimplemented{}
)

func (Unimplemented) Start() error             { return ErrNotImplemented }
func (Unimplemented) Stop() (AudioClip, error) { return AudioClip{}, ErrNotImplemented }
func (Unimplemented) Analyze(context.Context, AudioClip) (sentiment.Result, error) {
	return sentiment.Result{}, ErrNotImplemented
}
