package config

import (
	"testing"
	"time"
)

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultSnakeConfig().Difficulty)
	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	for _, score := range []int{0, 100, 10000} {
		if got := d.Interval(400*time.Millisecond, 80*time.Millisecond, score, 0); got != 400*time.Millisecond {
			t.Errorf("score %d: interval = %v, want 400ms", score, got)
		}
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score int
		level float64
		iv    time.Duration
	}{
		{0, 0, 400 * time.Millisecond},
		{50, 0.5, 400 * time.Millisecond * 2 / 3},
		{100, 1, 200 * time.Millisecond},
		{500, 1, 200 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %v, want %v", tc.score, got, tc.level)
		}
		if got := d.Interval(400*time.Millisecond, 0, tc.score, 0); got != tc.iv {
			t.Errorf("Interval(%d) = %v, want %v", tc.score, got, tc.iv)
		}
	}
}

func TestDifficultyFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 10.0},
	})
	if got := d.Interval(400*time.Millisecond, 80*time.Millisecond, 10, 0); got != 80*time.Millisecond {
		t.Errorf("interval = %v, want floor 80ms", got)
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 0},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})
	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, want 0.5", got)
	}
	// MaxAt of zero must not divide by zero
	if got := d.Level(0, 1); got != 1 {
		t.Errorf("Level after one tick = %v, want 1", got)
	}
}

func TestDifficultyIsEnabled(t *testing.T) {
	var nilManager *DifficultyManager
	if nilManager.IsEnabled() {
		t.Error("nil manager should be disabled")
	}
	fixed := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "none"},
	})
	if !fixed.IsEnabled() || fixed.Level(100, 100) != 0.5 {
		t.Error("none progression should stay enabled at its initial level")
	}
	off := NewDifficultyManager(DifficultyConfig{InitialLevel: 0.5, Progression: ProgressionConfig{Type: "score"}})
	if off.IsEnabled() || off.Level(0, 0) != 0 {
		t.Error("disabled manager should report level 0")
	}
}
