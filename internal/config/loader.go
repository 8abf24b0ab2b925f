package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names reported by Load.
const (
	SourceEmbedded  = "embedded"
	SourceHardcoded = "hardcoded"
)

// Load loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return SnakeConfig{}, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("snake.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultSnakeConfig(), SourceHardcoded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Snappier start on hard, gentler ramp on easy
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Scaling.SpeedMultiplier = 1.0
	case DifficultyHard:
		cfg.Difficulty.Scaling.SpeedMultiplier = 3.0
	}
}
