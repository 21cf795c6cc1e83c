// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Snake      SnakeBody        `yaml:"snake"`
	Food       SnakeFood        `yaml:"food"`
	Timing     SnakeTiming      `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard defines the logical canvas.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines head and tail geometry.
type SnakeBody struct {
	Step          int `yaml:"step"`
	HeadSize      int `yaml:"head_size"`
	SegmentLength int `yaml:"segment_length"`
}

// SnakeFood defines food size and value.
type SnakeFood struct {
	Size   int `yaml:"size"`
	Growth int `yaml:"growth"`
}

// SnakeTiming defines the tick schedule.
type SnakeTiming struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	SpeedupPer     int `yaml:"speedup_per"`
}

// DifficultyConfig selects a difficulty preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate checks the config for values the game cannot run with.
// A min interval below 1ms is raised to 1ms rather than rejected.
func (c *SnakeConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  int
	}{
		{"board.width", c.Board.Width},
		{"board.height", c.Board.Height},
		{"snake.step", c.Snake.Step},
		{"snake.head_size", c.Snake.HeadSize},
		{"snake.segment_length", c.Snake.SegmentLength},
		{"food.size", c.Food.Size},
		{"timing.base_interval_ms", c.Timing.BaseIntervalMS},
		{"timing.speedup_per", c.Timing.SpeedupPer},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.val))
		}
	}

	if c.Food.Growth < 0 {
		errs = append(errs, fmt.Errorf("food.growth must not be negative, got %d", c.Food.Growth))
	}
	if c.Food.Size >= c.Board.Width || c.Food.Size >= c.Board.Height {
		errs = append(errs, fmt.Errorf("food.size %d does not fit the %dx%d board",
			c.Food.Size, c.Board.Width, c.Board.Height))
	}
	if !c.Difficulty.Preset.Valid() {
		errs = append(errs, fmt.Errorf("unknown difficulty preset %q", c.Difficulty.Preset))
	}

	if c.Timing.MinIntervalMS < 1 {
		c.Timing.MinIntervalMS = 1
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
