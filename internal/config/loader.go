package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.boggle/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hardcoded default.
// Only a customPath that cannot be read, parsed or validated is an error.
func Load(variant, customPath string) (BoggleConfig, error) {
	fallback, err := Default(variant)
	if err != nil {
		return BoggleConfig{}, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, fallback)
		if err != nil {
			return fallback, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath, fallback); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", filename), fallback); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	data, err := embeddedYAML(variant)
	if err != nil {
		return fallback, err
	}
	if cfg, err := parse(data, fallback); err == nil {
		return cfg, nil
	}
	return fallback, nil // Fallback to hardcoded if embed fails
}

func loadFile(path string, base BoggleConfig) (BoggleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	return parse(data, base)
}

// parse overlays YAML on base, so omitted keys keep their defaults.
func parse(data []byte, base BoggleConfig) (BoggleConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boggle", "configs", filename)
}
