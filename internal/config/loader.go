package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMonsters loads Snake & Monsters configuration.
// Search order: customPath -> ~/.arcade/configs/monsters.yaml -> ./configs/monsters.yaml -> embedded default.
// Files found on the search path are layered over the defaults, so they may
// set only the keys they want to change.
func LoadMonsters(customPath string) (MonstersConfig, error) {
	cfg := DefaultMonstersConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("monsters.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "monsters.yaml")); ok {
		return loaded, nil
	}

	embedded := DefaultMonstersConfig()
	if err := yaml.Unmarshal(defaultMonstersYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultMonstersConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return embedded, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (MonstersConfig, bool) {
	cfg := DefaultMonstersConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
