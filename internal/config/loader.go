package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the file looked up in the user and local config directories.
const configFileName = "arkanoid.yaml"

// LoadArkanoid loads arkanoid configuration.
// Search order: customPath -> ~/.arcade/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
// Files are layered over the defaults, so a partial file only overrides the keys it sets.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultArkanoidConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseArkanoid(data)
		if err != nil {
			return DefaultArkanoidConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseArkanoid(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := ParseArkanoid(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseArkanoid(defaultArkanoidYAML)
	if err != nil {
		return DefaultArkanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseArkanoid decodes YAML on top of the defaults and validates the result.
func ParseArkanoid(data []byte) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MarshalArkanoid encodes the config as YAML.
func MarshalArkanoid(cfg ArkanoidConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyArkanoidPreset scales the ball and paddle speeds for a difficulty preset.
// The scaled speeds then stay fixed for the whole game.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	factor := SpeedFactorForPreset(preset)
	cfg.Ball.Speed *= factor
	cfg.Paddle.Speed *= factor
}
