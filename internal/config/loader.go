package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/wingshot.yaml
var defaultYAML []byte

// Load resolves and validates the game configuration.
// Search order: customPath -> ~/.wingshot/config.yaml -> ./configs/wingshot.yaml
// -> embedded default. A file that exists but fails to parse or validate is
// a fatal error rather than a silent fallback: running on half a config
// would change gameplay behind the player's back.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return loadFile(userPath)
		}
	}

	localPath := filepath.Join("configs", "wingshot.yaml")
	if _, err := os.Stat(localPath); err == nil {
		return loadFile(localPath)
	}

	return Default()
}

// Default returns the embedded default configuration.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("config: embedded default is broken: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: embedded default: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns ~/.wingshot/config.yaml, or empty when the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wingshot", "config.yaml")
}
