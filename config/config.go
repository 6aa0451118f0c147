package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

// DefaultCascade is resolved against OpenCV's installed data directories
// when it is not found relative to the working directory.
const DefaultCascade = "haarcascade_frontalface_default.xml"

// Frame source kinds accepted in Config.Source.
const (
	SourceCamera = "camera"
	SourceScreen = "screen"
)

// Config holds runtime configuration for capture, detection and analysis.
// Fields may be loaded from a JSON file and edited from the config panel.
type Config struct {
	Debug bool `json:"debug"`

	// Capture parameters
	Source         string `json:"source"`
	CameraDevice   int    `json:"camera_device"`
	TickIntervalMs int    `json:"tick_interval_ms"`
	WarnAfterMiss  int    `json:"warn_after_miss"`

	// Face detection parameters
	CascadePath  string  `json:"cascade_path"`
	ScaleFactor  float64 `json:"scale_factor"`
	MinNeighbors int     `json:"min_neighbors"`
	MinFacePx    int     `json:"min_face_px"`
	BoxThickness int     `json:"box_thickness"`

	// Text sentiment pipeline
	SentimentURL       string `json:"sentiment_url"`
	SentimentTokenEnv  string `json:"sentiment_token_env"`
	SentimentTimeoutS  int    `json:"sentiment_timeout_s"`
	SentimentCacheSize int    `json:"sentiment_cache_size"`

	// Screen selection rectangle (screen source only)
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:              false,
		Source:             SourceCamera,
		CameraDevice:       0,
		TickIntervalMs:     30,
		WarnAfterMiss:      30,
		CascadePath:        DefaultCascade,
		ScaleFactor:        1.3,
		MinNeighbors:       5,
		MinFacePx:          0,
		BoxThickness:       2,
		SentimentURL:       "https://api-inference.huggingface.co/models/distilbert/distilbert-base-uncased-finetuned-sst-2-english",
		SentimentTokenEnv:  "HF_TOKEN",
		SentimentTimeoutS:  30,
		SentimentCacheSize: 128,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if c.Source != SourceCamera && c.Source != SourceScreen {
		c.Source = SourceCamera
	}
	if c.CameraDevice < 0 {
		c.CameraDevice = 0
	}
	c.CascadePath = strings.TrimSpace(c.CascadePath)
	if c.CascadePath == "" {
		c.CascadePath = DefaultCascade
	}
	if c.TickIntervalMs <= 0 {
		c.TickIntervalMs = 30
	}
	if c.WarnAfterMiss <= 0 {
		c.WarnAfterMiss = 30
	}
	// OpenCV rejects scale factors <= 1.
	if c.ScaleFactor <= 1.0 {
		c.ScaleFactor = 1.3
	}
	if c.MinNeighbors < 0 {
		c.MinNeighbors = 5
	}
	if c.MinFacePx < 0 {
		c.MinFacePx = 0
	}
	if c.BoxThickness <= 0 {
		c.BoxThickness = 2
	}
	if c.SentimentTimeoutS <= 0 {
		c.SentimentTimeoutS = 30
	}
	if c.SentimentCacheSize <= 0 {
		c.SentimentCacheSize = 128
	}
	if c.SelectionW < 0 || c.SelectionH < 0 {
		c.SelectionW, c.SelectionH = 0, 0
	}
	return nil
}

// TickInterval returns the capture tick interval as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// SentimentTimeout returns the classifier request timeout.
func (c *Config) SentimentTimeout() time.Duration {
	return time.Duration(c.SentimentTimeoutS) * time.Second
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
