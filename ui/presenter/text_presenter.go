package presenter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/soocke/emotion-lens/domain/sentiment"
)

// TextSource returns the text typed by the user.
type TextSource interface{ Text() string }

// TextAnalyzer is the sentiment capability used by the presenter.
type TextAnalyzer interface {
	Analyze(ctx context.Context, text string) (sentiment.Result, error)
}

// TextBusyView reflects an in-flight analysis.
type TextBusyView interface{ SetAnalyzing(bool) }

type textResult struct {
	res sentiment.Result
	err error
}

// TextPresenter validates input on the UI thread and runs the classifier on a
// worker goroutine. Results are delivered on the next Poll, which the update
// loop calls from the UI thread.
type TextPresenter struct {
	source   TextSource
	analyzer TextAnalyzer
	dialogs  Dialogs
	view     TextBusyView
	timeout  time.Duration
	logger   *slog.Logger

	busy     bool
	resultCh chan textResult
}

func NewTextPresenter(source TextSource, analyzer TextAnalyzer, dialogs Dialogs, view TextBusyView, timeout time.Duration, logger *slog.Logger) *TextPresenter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TextPresenter{source: source, analyzer: analyzer, dialogs: dialogs, view: view, timeout: timeout, logger: logger, resultCh: make(chan textResult, 1)}
}

// Analyze submits the current text. Blank text is rejected immediately with a
// warning and never reaches the analyzer.
func (p *TextPresenter) Analyze() {
	if p == nil || p.source == nil || p.analyzer == nil || p.dialogs == nil {
		return
	}
	if p.busy {
		return
	}
	text := p.source.Text()
	if strings.TrimSpace(text) == "" {
		p.warnEmpty()
		return
	}
	p.setBusy(true)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		res, err := p.analyzer.Analyze(ctx, text)
		p.resultCh <- textResult{res: res, err: err}
	}()
}

// Poll delivers a finished analysis, if any. Call from the UI thread.
func (p *TextPresenter) Poll() {
	if p == nil || !p.busy {
		return
	}
	select {
	case r := <-p.resultCh:
		p.setBusy(false)
		p.deliver(r)
	default:
	}
}

// Busy reports whether an analysis is in flight.
func (p *TextPresenter) Busy() bool { return p != nil && p.busy }

func (p *TextPresenter) deliver(r textResult) {
	var verr *sentiment.ValidationError
	switch {
	case errors.As(r.err, &verr):
		p.warnEmpty()
	case r.err != nil:
		if p.logger != nil {
			p.logger.Error("text analysis", "error", r.err)
		}
		p.dialogs.Error("Analysis failed", r.err.Error())
	default:
		p.dialogs.Info("Analysis Result", r.res.String())
	}
}

func (p *TextPresenter) warnEmpty() {
	p.dialogs.Warning("Warning", "Please enter some text to analyze")
}

func (p *TextPresenter) setBusy(b bool) {
	p.busy = b
	if p.view != nil {
		p.view.SetAnalyzing(b)
	}
}
