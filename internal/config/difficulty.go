package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset. The empty string means
// "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ZombiesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Player.HP = 7
		cfg.Spawner.Interval = 240
		cfg.Enemy.Speed = 2.6
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Player.HP = 3
		cfg.Enemy.HP = 3
		cfg.Spawner.Interval = 120
		cfg.Spawner.SafeDistance = 4
	case DifficultyFixed:
		// Same opening as normal, but waves never speed up
		cfg.Difficulty.Enabled = false
	}

	if cfg.Spawner.Interval < cfg.Spawner.IntervalMin {
		cfg.Spawner.Interval = cfg.Spawner.IntervalMin
	}
}
