package sentiment

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is wrapped by ValidationError for blank input.
	ErrEmptyText = errors.New("sentiment: empty text")
	// ErrNoScores means the classifier answered without any category.
	ErrNoScores = errors.New("sentiment: classifier returned no scores")
	// ErrUnknownLabel means the top category is outside the known label set.
	ErrUnknownLabel = errors.New("sentiment: unknown label")
	// ErrScoreRange means the classifier produced a score outside [0,1].
	ErrScoreRange = errors.New("sentiment: score out of range")
)

// ValidationError reports input rejected before reaching the classifier.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// Score is one category emitted by a classifier.
type Score struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Result is the outcome of one analysis request.
type Result struct {
	Label string
	Score float64
}

func (r Result) String() string {
	return fmt.Sprintf("Emotion: %s\nScore: %.4f", r.Label, r.Score)
}

// Classifier is the external text-classification capability.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]Score, error)
}
