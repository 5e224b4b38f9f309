// Package config provides YAML-based runtime configuration for the platformer:
// frame rate, lives, level pack location, key bindings and logging.
// Movement physics are fixed in the simulation and deliberately not exposed here.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all runtime configuration.
type Config struct {
	TickRate    int          `yaml:"tick_rate"`
	Lives       int          `yaml:"lives"`
	EndingDelay float64      `yaml:"ending_delay"`   // Seconds a finished level keeps animating
	HoldWindow  int          `yaml:"hold_window_ms"` // How long a key press counts as held
	Levels      LevelsConfig `yaml:"levels"`
	Keys        KeysConfig   `yaml:"keys"`
	Log         LogConfig    `yaml:"log"`
}

// LevelsConfig selects the level pack and the first level to play.
type LevelsConfig struct {
	Path  string `yaml:"path"`  // Directory of level files; empty = built-in pack
	Start int    `yaml:"start"` // 1-based
}

// KeysConfig lists the Bubble Tea key names bound to each action.
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Jump    []string `yaml:"jump"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// LogConfig configures the file logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty disables logging
}

// Validation errors.
var (
	ErrInvalidTickRate = errors.New("tick_rate must be between 1 and 240")
	ErrInvalidLives    = errors.New("lives must be positive")
	ErrInvalidDelay    = errors.New("ending_delay must be positive")
	ErrInvalidHold     = errors.New("hold_window_ms must be positive")
	ErrInvalidStart    = errors.New("levels.start must be positive")
	ErrMissingKeys     = errors.New("key binding list is empty")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("%w: got %d", ErrInvalidTickRate, c.TickRate)
	}
	if c.Lives < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLives, c.Lives)
	}
	if c.EndingDelay <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidDelay, c.EndingDelay)
	}
	if c.HoldWindow < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHold, c.HoldWindow)
	}
	if c.Levels.Start < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStart, c.Levels.Start)
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"jump", c.Keys.Jump},
		{"pause", c.Keys.Pause},
		{"restart", c.Keys.Restart},
		{"quit", c.Keys.Quit},
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: keys.%s", ErrMissingKeys, b.name)
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	return nil
}

// EndingDelayDuration returns EndingDelay as a time.Duration.
func (c Config) EndingDelayDuration() time.Duration {
	return time.Duration(c.EndingDelay * float64(time.Second))
}

// HoldWindowDuration returns HoldWindow as a time.Duration.
func (c Config) HoldWindowDuration() time.Duration {
	return time.Duration(c.HoldWindow) * time.Millisecond
}
