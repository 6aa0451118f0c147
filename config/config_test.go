package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ScaleFactor != 1.3 || cfg.MinNeighbors != 5 || cfg.TickIntervalMs != 30 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidate_ClampsInvalidValues(t *testing.T) {
	cfg := &Config{Source: "Webcam", ScaleFactor: 0.9, TickIntervalMs: -1, MinNeighbors: -3, BoxThickness: 0}
	_ = cfg.Validate()
	if cfg.Source != SourceCamera {
		t.Fatalf("expected camera source, got %q", cfg.Source)
	}
	if cfg.ScaleFactor != 1.3 {
		t.Fatalf("expected scale factor reset, got %v", cfg.ScaleFactor)
	}
	if cfg.TickIntervalMs != 30 || cfg.MinNeighbors != 5 || cfg.BoxThickness != 2 {
		t.Fatalf("clamp failed: %+v", cfg)
	}
}

func TestSaveLoad_PreservesEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.Source = SourceScreen
	cfg.MinNeighbors = 7
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Source != SourceScreen || got.MinNeighbors != 7 {
		t.Fatalf("edits lost: %+v", got)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.ScaleFactor != 1.3 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestValidate_BlankCascadePathUsesDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CascadePath = "   "
	_ = cfg.Validate()
	if cfg.CascadePath != DefaultCascade {
		t.Fatalf("expected %q, got %q", DefaultCascade, cfg.CascadePath)
	}
}
