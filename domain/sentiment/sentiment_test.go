package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type countingClassifier struct {
	calls  int
	scores []Score
	err    error
}

func (c *countingClassifier) Classify(ctx context.Context, text string) ([]Score, error) {
	c.calls++
	return c.scores, c.err
}

var knownLabels = []string{"POSITIVE", "NEGATIVE"}

func TestAnalyze_BlankTextNeverReachesClassifier(t *testing.T) {
	clf := &countingClassifier{scores: []Score{{Label: "POSITIVE", Score: 0.9}}}
	a, err := NewAnalyzer(clf, knownLabels, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range []string{"", "   ", "\n\t "} {
		_, err := a.Analyze(context.Background(), in)
		var verr *ValidationError
		if !errors.As(err, &verr) || !errors.Is(err, ErrEmptyText) {
			t.Fatalf("input %q: expected validation error, got %v", in, err)
		}
	}
	if clf.calls != 0 {
		t.Fatalf("classifier invoked %d times for blank input", clf.calls)
	}
}

func TestAnalyze_ReturnsTopScoreWithinRange(t *testing.T) {
	clf := &countingClassifier{scores: []Score{{Label: "NEGATIVE", Score: 0.02}, {Label: "POSITIVE", Score: 0.98}}}
	a, _ := NewAnalyzer(clf, knownLabels, 0, nil)
	r, err := a.Analyze(context.Background(), "I am thrilled about this!")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if r.Score < 0 || r.Score > 1 {
		t.Fatalf("score out of range: %v", r.Score)
	}
	found := false
	for _, l := range knownLabels {
		if l == r.Label {
			found = true
		}
	}
	if !found || r.Label != "POSITIVE" {
		t.Fatalf("unexpected label %q", r.Label)
	}
	if !strings.Contains(r.String(), "Emotion: POSITIVE") {
		t.Fatalf("unexpected display text %q", r.String())
	}
}

func TestAnalyze_RejectsMalformedResults(t *testing.T) {
	cases := []struct {
		name   string
		scores []Score
		want   error
	}{
		{"empty", nil, ErrNoScores},
		{"range", []Score{{Label: "POSITIVE", Score: 1.5}}, ErrScoreRange},
		{"label", []Score{{Label: "JOY", Score: 0.7}}, ErrUnknownLabel},
	}
	for _, tc := range cases {
		a, _ := NewAnalyzer(&countingClassifier{scores: tc.scores}, knownLabels, 0, nil)
		if _, err := a.Analyze(context.Background(), "text"); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestAnalyze_CachesByTrimmedText(t *testing.T) {
	clf := &countingClassifier{scores: []Score{{Label: "POSITIVE", Score: 0.8}}}
	a, _ := NewAnalyzer(clf, knownLabels, 8, nil)
	for _, in := range []string{"great day", "  great day  "} {
		if _, err := a.Analyze(context.Background(), in); err != nil {
			t.Fatal(err)
		}
	}
	if clf.calls != 1 {
		t.Fatalf("expected cached second call, classifier calls=%d", clf.calls)
	}
}

func TestAnalyze_ClassifierErrorWrapped(t *testing.T) {
	boom := errors.New("pipeline down")
	a, _ := NewAnalyzer(&countingClassifier{err: boom}, nil, 0, nil)
	if _, err := a.Analyze(context.Background(), "hi"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped classifier error, got %v", err)
	}
}

func TestHTTPClassifier_NestedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("unexpected request %s auth=%q", r.Method, r.Header.Get("Authorization"))
		}
		var req classifyReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Inputs != "hello" {
			t.Errorf("bad body: %v %+v", err, req)
		}
		_, _ = w.Write([]byte(`[[{"label":"POSITIVE","score":0.99},{"label":"NEGATIVE","score":0.01}]]`))
	}))
	defer srv.Close()

	scores, err := NewHTTPClassifier(srv.URL, "tok", time.Second).Classify(context.Background(), "hello")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if len(scores) != 2 || scores[0].Label != "POSITIVE" {
		t.Fatalf("unexpected scores %+v", scores)
	}
}

func TestHTTPClassifier_FlatResponseAndErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"model loading"}`))
			return
		}
		_, _ = w.Write([]byte(`[{"label":"NEGATIVE","score":0.7}]`))
	}))
	defer srv.Close()

	scores, err := NewHTTPClassifier(srv.URL, "", time.Second).Classify(context.Background(), "meh")
	if err != nil || len(scores) != 1 || scores[0].Label != "NEGATIVE" {
		t.Fatalf("flat decode: %+v %v", scores, err)
	}
	_, err = NewHTTPClassifier(srv.URL+"/fail", "", time.Second).Classify(context.Background(), "meh")
	if err == nil || !strings.Contains(err.Error(), "model loading") {
		t.Fatalf("expected upstream error message, got %v", err)
	}
}
