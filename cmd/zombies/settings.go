package main

import (
	"github.com/vovakirdan/zombie-attack/internal/config"
)

// loadConfig resolves the game configuration from the global flags.
// It returns the config and the source it was read from.
func loadConfig() (config.ZombiesConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ZombiesConfig{}, "", err
	}

	path, err := expandHome(flagConfig)
	if err != nil {
		return config.ZombiesConfig{}, "", err
	}

	cfg, source, err := config.Load(path)
	if err != nil {
		return config.ZombiesConfig{}, "", err
	}

	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, source, nil
}
