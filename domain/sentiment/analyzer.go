package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Analyzer validates input, calls the classifier and checks the result shape.
type Analyzer struct {
	clf    Classifier
	labels map[string]struct{}
	cache  *lru.Cache[string, Result]
	logger *slog.Logger
}

// NewAnalyzer builds an analyzer. An empty labels list accepts any label;
// cacheSize <= 0 disables caching.
func NewAnalyzer(clf Classifier, labels []string, cacheSize int, logger *slog.Logger) (*Analyzer, error) {
	if clf == nil {
		return nil, fmt.Errorf("sentiment: nil classifier")
	}
	a := &Analyzer{clf: clf, logger: logger}
	if len(labels) > 0 {
		a.labels = make(map[string]struct{}, len(labels))
		for _, l := range labels {
			a.labels[strings.ToUpper(l)] = struct{}{}
		}
	}
	if cacheSize > 0 {
		c, err := lru.New[string, Result](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("sentiment cache: %w", err)
		}
		a.cache = c
	}
	return a, nil
}

// Analyze returns the top category for text. Blank text is rejected with a
// *ValidationError before the classifier is invoked.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, &ValidationError{Err: ErrEmptyText}
	}
	if a.cache != nil {
		if r, ok := a.cache.Get(text); ok {
			return r, nil
		}
	}
	scores, err := a.clf.Classify(ctx, text)
	if err != nil {
		return Result{}, fmt.Errorf("classify: %w", err)
	}
	r, err := a.pick(scores)
	if err != nil {
		return Result{}, err
	}
	if a.cache != nil {
		a.cache.Add(text, r)
	}
	if a.logger != nil {
		a.logger.Debug("sentiment.result", "label", r.Label, "score", r.Score, "chars", len(text))
	}
	return r, nil
}

// Labels returns the known label set (nil when unrestricted).
func (a *Analyzer) Labels() []string {
	if a.labels == nil {
		return nil
	}
	out := make([]string, 0, len(a.labels))
	for l := range a.labels {
		out = append(out, l)
	}
	return out
}

func (a *Analyzer) pick(scores []Score) (Result, error) {
	if len(scores) == 0 {
		return Result{}, ErrNoScores
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	if best.Score < 0 || best.Score > 1 {
		return Result{}, fmt.Errorf("%w: %v", ErrScoreRange, best.Score)
	}
	if a.labels != nil {
		if _, ok := a.labels[strings.ToUpper(best.Label)]; !ok {
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownLabel, best.Label)
		}
	}
	return Result{Label: best.Label, Score: best.Score}, nil
}
