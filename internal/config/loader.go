package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the non-file configuration sources.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

const configFile = "zombies.yaml"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.zombies/configs/zombies.yaml ->
// ./configs/zombies.yaml -> embedded default -> built-in default.
//
// Values absent from a file keep their default. A custom path that cannot be
// read, parsed or validated is an error; the other locations are skipped
// silently when unusable.
func Load(customPath string) (ZombiesConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultZombiesConfig(), "", err
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := Parse(defaultZombiesYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultZombiesConfig(), SourceBuiltin, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (ZombiesConfig, error) {
	cfg := DefaultZombiesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg ZombiesConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

func loadFile(path string) (ZombiesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ZombiesConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return ZombiesConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zombies", "configs", filename)
}
