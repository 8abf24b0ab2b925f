package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled reports whether the manager adjusts the move interval at all.
// A "none" progression is enabled and holds the initial level. A nil
// manager is disabled.
func (d *DifficultyManager) IsEnabled() bool {
	return d != nil && d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// A disabled manager stays at level zero so the base interval is used as is.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the current speed multiplier based on difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Interval returns the move period for the current score/ticks: the base
// period divided by the speed factor, never below floor.
func (d *DifficultyManager) Interval(base, floor time.Duration, score int, ticks int) time.Duration {
	speed := d.Speed(1.0, score, ticks)
	if speed <= 0 {
		return base
	}
	iv := time.Duration(float64(base) / speed)
	if iv < floor {
		iv = floor
	}
	return iv
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
