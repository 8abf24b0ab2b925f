// Package config provides YAML-based game configuration loading and
// difficulty management for snake.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Storage    StorageConfig    `yaml:"storage"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines how the terminal is divided into cells.
type BoardConfig struct {
	CellWidth   int          `yaml:"cell_width"`  // Columns per cell on wide terminals
	CellHeight  int          `yaml:"cell_height"` // Rows per cell
	Breakpoints []Breakpoint `yaml:"breakpoints"`
}

// Breakpoint selects a narrower cell for terminals up to MaxWidth columns.
type Breakpoint struct {
	MaxWidth  int `yaml:"max_width"`
	CellWidth int `yaml:"cell_width"`
}

// CellSize returns the cell size for a surface of the given width.
// Breakpoints are checked in order; the first one that fits wins.
func (b BoardConfig) CellSize(width int) (int, int) {
	for _, bp := range b.Breakpoints {
		if width <= bp.MaxWidth {
			return bp.CellWidth, b.CellHeight
		}
	}
	return b.CellWidth, b.CellHeight
}

// TimingConfig defines the two scheduler periods.
type TimingConfig struct {
	MoveInterval    time.Duration `yaml:"move_interval"`
	MinMoveInterval time.Duration `yaml:"min_move_interval"` // Floor when difficulty speeds the game up
	ClockInterval   time.Duration `yaml:"clock_interval"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	Path         string `yaml:"path"`
	HighScoreKey string `yaml:"high_score_key"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Board.CellWidth <= 0 || c.Board.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("board: cell size %dx%d must be positive", c.Board.CellWidth, c.Board.CellHeight))
	}
	for i, bp := range c.Board.Breakpoints {
		if bp.CellWidth <= 0 {
			errs = append(errs, fmt.Errorf("board: breakpoint %d: cell_width must be positive", i))
		}
	}
	if c.Timing.MoveInterval <= 0 {
		errs = append(errs, errors.New("timing: move_interval must be positive"))
	}
	if c.Timing.ClockInterval <= 0 {
		errs = append(errs, errors.New("timing: clock_interval must be positive"))
	}
	if c.Timing.MinMoveInterval < 0 || c.Timing.MinMoveInterval > c.Timing.MoveInterval {
		errs = append(errs, errors.New("timing: min_move_interval must be between 0 and move_interval"))
	}
	if c.Scoring.FoodPoints <= 0 {
		errs = append(errs, errors.New("scoring: food_points must be positive"))
	}
	if c.Storage.HighScoreKey == "" {
		errs = append(errs, errors.New("storage: high_score_key must not be empty"))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty: unknown progression type %q", c.Difficulty.Progression.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
