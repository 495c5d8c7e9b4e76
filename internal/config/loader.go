package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAI loads the AI configuration.
// Search order: customPath -> ~/.t2048/configs/ai.yaml -> ./configs/ai.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A profile entry replaces the default entry for that level as a whole.
func LoadAI(customPath string) (AIConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AIConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAI(data)
		if err != nil {
			return AIConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ai.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAI(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "ai.yaml")); err == nil {
		if cfg, err := parseAI(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseAI(defaultAIYAML)
	if err != nil {
		return DefaultAIConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseAI(data []byte) (AIConfig, error) {
	cfg := DefaultAIConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AIConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AIConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed presets disable adaptive difficulty; the adaptive preset enables it.
func ApplyPreset(cfg *AIConfig, preset DifficultyPreset) {
	cfg.Adaptive.Enabled = IsAdaptivePreset(preset)
}
