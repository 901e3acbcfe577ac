package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files are allowed.
func Load(customPath string) (DodgerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodger.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dodger.yaml")); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultDodgerYAML)
	if err != nil {
		return DefaultDodgerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Resolve loads the config, applies environment overrides and the preset,
// then validates the result. Any error means the game must not start.
func Resolve(customPath string, preset DifficultyPreset) (DodgerConfig, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg DodgerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

func decode(data []byte) (DodgerConfig, error) {
	cfg := DefaultDodgerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Progress.InitialLives = 5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Progress.InitialLives = 3
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Progress.InitialLives = 2
		cfg.Rocks.SpawnInterval = 1.2
	}
}
