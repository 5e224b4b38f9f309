package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	def := Default()
	if cfg.TickRate != def.TickRate || cfg.Lives != def.Lives || cfg.HoldWindow != def.HoldWindow {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, def)
	}
	if len(cfg.Keys.Jump) != len(def.Keys.Jump) {
		t.Errorf("jump bindings differ: %v vs %v", cfg.Keys.Jump, def.Keys.Jump)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("lives: 7\nlevels:\n  start: 2\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Lives != 7 {
		t.Errorf("expected lives 7, got %d", cfg.Lives)
	}
	if cfg.Levels.Start != 2 {
		t.Errorf("expected start 2, got %d", cfg.Levels.Start)
	}
	if cfg.TickRate != 60 {
		t.Errorf("tick rate should keep its default, got %d", cfg.TickRate)
	}
	if len(cfg.Keys.Left) == 0 {
		t.Error("key bindings should keep their defaults")
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected error
	}{
		{"zero tick rate", "tick_rate: 0", ErrInvalidTickRate},
		{"huge tick rate", "tick_rate: 1000", ErrInvalidTickRate},
		{"no lives", "lives: 0", ErrInvalidLives},
		{"negative delay", "ending_delay: -1", ErrInvalidDelay},
		{"zero delay", "ending_delay: 0", ErrInvalidDelay},
		{"zero hold", "hold_window_ms: 0", ErrInvalidHold},
		{"zero start", "levels:\n  start: 0", ErrInvalidStart},
		{"empty jump keys", "keys:\n  jump: []", ErrMissingKeys},
		{"bad log level", "log:\n  level: loud", ErrInvalidLogLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("lives: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("expected tick rate 30, got %d", cfg.TickRate)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Lives != Default().Lives {
		t.Errorf("expected default lives, got %d", cfg.Lives)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, localConfigPath), []byte("lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Lives != 9 {
		t.Errorf("expected lives from ./configs, got %d", cfg.Lives)
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	cfg.EndingDelay = 1.5
	cfg.HoldWindow = 250

	if cfg.EndingDelayDuration() != 1500*time.Millisecond {
		t.Errorf("EndingDelayDuration() = %v", cfg.EndingDelayDuration())
	}
	if cfg.HoldWindowDuration() != 250*time.Millisecond {
		t.Errorf("HoldWindowDuration() = %v", cfg.HoldWindowDuration())
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		input string
		lives int
	}{
		{"easy", 5},
		{"normal", 3},
		{"hard", 1},
	}

	for _, tc := range tests {
		preset, err := ParseDifficulty(tc.input)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q) failed: %v", tc.input, err)
		}
		cfg := Default()
		cfg.Lives = 42
		ApplyPreset(&cfg, preset)
		if cfg.Lives != tc.lives {
			t.Errorf("%s: expected %d lives, got %d", tc.input, tc.lives, cfg.Lives)
		}
	}

	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}

	cfg := Default()
	cfg.Lives = 42
	ApplyPreset(&cfg, "")
	if cfg.Lives != 42 {
		t.Error("empty preset should leave lives alone")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/x/y.log"); got != filepath.Join(home, "x", "y.log") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}
