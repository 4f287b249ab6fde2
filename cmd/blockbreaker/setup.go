package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
)

// newLogger creates a logger writing to w at the level named by flagLogLevel.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockbreaker",
		Level:           level,
	}), nil
}

// openLog returns the log destination: the --log-file when set, otherwise fallback.
// The returned close function is always safe to call.
func openLog(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}

// loadConfig loads the config from the search path and applies --difficulty.
func loadConfig(logger *log.Logger) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, source, err := config.Load(flagConfig, logger)
	if err != nil {
		return config.Config{}, err
	}
	logger.Info("config loaded", "source", source)

	if preset != "" {
		config.ApplyPreset(&cfg, preset)
		logger.Info("difficulty preset applied", "preset", preset)
	}
	if flagFPS > 0 {
		cfg.Screen.FPS = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newGame loads the config and builds the game with its runtime settings.
func newGame(logger *log.Logger, screenW, screenH int) (*breakout.Game, config.Config, core.RuntimeConfig, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, config.Config{}, core.RuntimeConfig{}, err
	}

	game, err := breakout.New(cfg, breakout.WithLogger(logger))
	if err != nil {
		return nil, config.Config{}, core.RuntimeConfig{}, err
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: cfg.Screen.FPS,
		Seed:     seed,
	}
	return game, cfg, runtime, nil
}
