package presenter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/soocke/emotion-lens/domain/voice"
)

// VoicePresenter drives record / stop / analyze. Every failure is shown to the
// user; an unimplemented capability is reported as such, never silently ignored.
type VoicePresenter struct {
	recorder voice.Recorder
	analyzer voice.Analyzer
	dialogs  Dialogs
	status   StatusSink
	logger   *slog.Logger

	recording bool
	clip      voice.AudioClip
}

func NewVoicePresenter(rec voice.Recorder, an voice.Analyzer, dialogs Dialogs, status StatusSink, logger *slog.Logger) *VoicePresenter {
	return &VoicePresenter{recorder: rec, analyzer: an, dialogs: dialogs, status: status, logger: logger}
}

func (p *VoicePresenter) Record() {
	if p == nil || p.recorder == nil {
		return
	}
	if p.recording {
		return
	}
	if err := p.recorder.Start(); err != nil {
		p.fail("Record Voice", err)
		return
	}
	p.recording = true
	p.setStatus("Recording…")
}

func (p *VoicePresenter) StopRecording() {
	if p == nil || p.recorder == nil {
		return
	}
	if !p.recording {
		// Still ask the recorder so a missing capability is reported.
		if _, err := p.recorder.Stop(); err != nil {
			p.fail("Stop Recording", err)
		}
		return
	}
	p.recording = false
	clip, err := p.recorder.Stop()
	if err != nil {
		p.fail("Stop Recording", err)
		return
	}
	p.clip = clip
	p.setStatus("Recorded " + clip.Duration().Round(100*time.Millisecond).String())
}

func (p *VoicePresenter) Analyze() {
	if p == nil || p.analyzer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	res, err := p.analyzer.Analyze(ctx, p.clip)
	if err != nil {
		p.fail("Analyze Voice", err)
		return
	}
	p.dialogs.Info("Analysis Result", res.String())
}

func (p *VoicePresenter) fail(title string, err error) {
	if p.logger != nil {
		p.logger.Error("voice", "action", title, "error", err)
	}
	if p.dialogs == nil {
		return
	}
	switch {
	case errors.Is(err, voice.ErrNotImplemented):
		p.dialogs.Error("Not implemented", title+": "+err.Error())
	case errors.Is(err, voice.ErrEmptyClip):
		p.dialogs.Warning("Warning", "Record a voice clip first")
	default:
		p.dialogs.Error(title, err.Error())
	}
}

func (p *VoicePresenter) setStatus(s string) {
	if p.status != nil {
		p.status.SetStatus(s)
	}
}
