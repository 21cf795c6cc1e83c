package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

// isolate points HOME and the working directory at an empty temp dir so the
// search path only sees files the test writes.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("LoadSnake() = %+v, expected defaults", cfg)
	}
}

func TestLoadSnakeCustomPathPartialOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "timing:\n  base_interval_ms: 80\n")

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Timing.BaseIntervalMS != 80 {
		t.Errorf("BaseIntervalMS = %d, expected 80", cfg.Timing.BaseIntervalMS)
	}
	if cfg.Board.Width != 500 || cfg.Timing.MinIntervalMS != 1 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSnake() with a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map]\n")
	_, err := LoadSnake(bad)
	if err == nil {
		t.Fatal("LoadSnake() with malformed YAML should fail")
	}
	if !strings.Contains(err.Error(), "cannot parse") {
		t.Errorf("error = %q, expected a parse error", err)
	}
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, "configs", "snake.yaml"), "board:\n  width: 400\n")
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Width != 400 {
		t.Errorf("local config not used, width = %d", cfg.Board.Width)
	}

	// User config wins over the local one
	writeFile(t, filepath.Join(dir, ".xenzia", "snake.yaml"), "board:\n  width: 300\n")
	cfg, err = LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Width != 300 {
		t.Errorf("user config not preferred, width = %d", cfg.Board.Width)
	}
}

func TestLoadSnakeSkipsMalformedSearchFiles(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".xenzia", "snake.yaml"), "board: [1, 2\n")

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("malformed user config should be skipped, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{"defaults", func(*SnakeConfig) {}, ""},
		{"zero width", func(c *SnakeConfig) { c.Board.Width = 0 }, "board.width"},
		{"negative step", func(c *SnakeConfig) { c.Snake.Step = -10 }, "snake.step"},
		{"zero base interval", func(c *SnakeConfig) { c.Timing.BaseIntervalMS = 0 }, "base_interval_ms"},
		{"negative growth", func(c *SnakeConfig) { c.Food.Growth = -1 }, "food.growth"},
		{"food too big", func(c *SnakeConfig) { c.Food.Size = 300 }, "does not fit"},
		{"unknown preset", func(c *SnakeConfig) { c.Difficulty.Preset = "insane" }, "insane"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateClampsMinInterval(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Timing.MinIntervalMS = -5
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if cfg.Timing.MinIntervalMS != 1 {
		t.Errorf("MinIntervalMS = %d, expected clamp to 1", cfg.Timing.MinIntervalMS)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		interval int
	}{
		{DifficultyEasy, 70},
		{DifficultyNormal, 50},
		{DifficultyHard, 35},
		{DifficultyFixed, 50}, // keeps configured interval
		{"", 50},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			if cfg.Timing.BaseIntervalMS != tc.interval {
				t.Errorf("BaseIntervalMS = %d, expected %d", cfg.Timing.BaseIntervalMS, tc.interval)
			}
		})
	}

	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	if !IsFixedPreset(cfg.Difficulty.Preset) {
		t.Error("fixed preset should be recorded in the config")
	}
}

func TestApplyConfiguredPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		base     int
		expected int
	}{
		{DifficultyEasy, 50, 70},
		{DifficultyHard, 50, 35},
		{DifficultyNormal, 80, 80}, // keeps the configured interval
		{DifficultyFixed, 80, 80},
		{"", 80, 80},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			cfg.Difficulty.Preset = tc.preset
			cfg.Timing.BaseIntervalMS = tc.base

			ApplyConfiguredPreset(&cfg)
			if cfg.Timing.BaseIntervalMS != tc.expected {
				t.Errorf("BaseIntervalMS = %d, expected %d", cfg.Timing.BaseIntervalMS, tc.expected)
			}
			if cfg.Difficulty.Preset != tc.preset {
				t.Errorf("Preset = %q, expected %q", cfg.Difficulty.Preset, tc.preset)
			}
		})
	}
}
