package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/soocke/emotion-lens/app"
	"github.com/soocke/emotion-lens/config"
	"github.com/soocke/emotion-lens/debug"
)

const configPath = "emotion-lens.json"

func main() {
	cfg, cfgErr := config.Load(configPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "error", cfgErr)
	}
	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger)
		debug.StartMemLogger(5*time.Second, logger)
	}

	application, err := app.NewApp("Emotion Lens", 1100, 720, cfg, configPath, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	application.Start()
}
