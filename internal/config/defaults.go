package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			CellWidth:  2,
			CellHeight: 1,
			Breakpoints: []Breakpoint{
				{MaxWidth: 60, CellWidth: 1},
			},
		},
		Timing: TimingConfig{
			MoveInterval:    400 * time.Millisecond,
			MinMoveInterval: 80 * time.Millisecond,
			ClockInterval:   time.Second,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Storage: StorageConfig{
			Path:         "~/.snake/scores.db",
			HighScoreKey: "highScore",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
