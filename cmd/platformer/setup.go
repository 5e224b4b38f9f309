package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// newLogger opens the log file from cfg. The game owns the terminal, so log
// output never goes to stdout or stderr; an empty file name discards it.
// The returned close function must be called when done.
func newLogger(cfg config.LogConfig) (*log.Logger, func() error, error) {
	if cfg.File == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	path := config.ExpandHome(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
	return logger, f.Close, nil
}

// levelLoader returns a loader for dir, or the built-in pack when dir is empty.
func levelLoader(dir string) *levels.Loader {
	if dir == "" {
		return levels.Builtin()
	}
	return levels.NewLoader(config.ExpandHome(dir))
}

// playLevels returns the levels to play: the whole pack, or only the level
// with the given ID. An unknown ID lists the IDs the pack has.
func playLevels(loader *levels.Loader, id string) ([]levels.Level, error) {
	if id == "" {
		return loader.LoadAll()
	}

	lvl, err := loader.LoadByID(id)
	if errors.Is(err, levels.ErrNotFound) {
		if ids, listErr := loader.ListIDs(); listErr == nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
		}
	}
	if err != nil {
		return nil, err
	}
	return []levels.Level{lvl}, nil
}

// fail prints an error and exits, as every command does on failure.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
