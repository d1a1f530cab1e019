package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const linesFile = "lines.yaml"

// Load loads the Lines configuration.
// Search order: customPath -> ~/.arcade/configs/lines.yaml -> ./configs/lines.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only some fields.
// The result is validated; an explicit customPath that fails to read or
// parse is an error, while broken files further down the search order are
// skipped.
func Load(customPath string) (LinesConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (LinesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLinesConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(linesFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", linesFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultLinesYAML)
	if err != nil {
		return DefaultLinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals YAML on top of the hardcoded defaults.
func decode(data []byte) (LinesConfig, error) {
	cfg := DefaultLinesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultLinesConfig(), err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg LinesConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
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
