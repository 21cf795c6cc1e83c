package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration: a 500x300
// canvas, 10-unit steps and a 50ms starting tick.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  500,
			Height: 300,
		},
		Snake: SnakeBody{
			Step:          10,
			HeadSize:      10,
			SegmentLength: 10,
		},
		Food: SnakeFood{
			Size:   5,
			Growth: 10,
		},
		Timing: SnakeTiming{
			BaseIntervalMS: 50,
			MinIntervalMS:  1,
			SpeedupPer:     10,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}
