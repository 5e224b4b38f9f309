package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate:    60,
		Lives:       3,
		EndingDelay: 1.0,
		HoldWindow:  300,
		Levels: LevelsConfig{
			Path:  "",
			Start: 1,
		},
		Keys: KeysConfig{
			Left:    []string{"left", "a"},
			Right:   []string{"right", "d"},
			Jump:    []string{"up", "w", " "},
			Pause:   []string{"esc", "p"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.platformer/platformer.log",
		},
	}
}
