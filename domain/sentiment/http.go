package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

type classifyReq struct {
	Inputs string `json:"inputs"`
}

type errorResp struct {
	Error string `json:"error"`
}

// HTTPClassifier posts text to a text-classification pipeline endpoint.
// It accepts both the nested ([[{label,score}]]) and flat ([{label,score}])
// response shapes used by Hugging Face style inference servers.
type HTTPClassifier struct {
	URL   string
	Token string // optional bearer token
	c     *http.Client
}

var _ Classifier = (*HTTPClassifier)(nil)

// NewHTTPClassifier creates a classifier with the given request timeout.
func NewHTTPClassifier(url, token string, timeout time.Duration) *HTTPClassifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClassifier{
		URL:   url,
		Token: token,
		c: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (h *HTTPClassifier) Classify(ctx context.Context, text string) ([]Score, error) {
	b, err := json.Marshal(classifyReq{Inputs: text})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.Token != "" {
		req.Header.Set("Authorization", "Bearer "+h.Token)
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("sentiment read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var e errorResp
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("sentiment %s: %s", resp.Status, e.Error)
		}
		return nil, fmt.Errorf("sentiment %s: %s", resp.Status, string(body))
	}
	return decodeScores(body)
}

func decodeScores(body []byte) ([]Score, error) {
	var nested [][]Score
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}
	var flat []Score
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("sentiment decode: %w", err)
	}
	return flat, nil
}
