package config

import (
	_ "embed"
	"maps"
	"slices"
)

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

// DefaultZombiesConfig returns the built-in configuration. It mirrors the
// embedded YAML and is the last resort when that fails to parse.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
			Tile:   48,
		},
		Player: PlayerConfig{
			Start:        CellConfig{Row: 3, Col: 3},
			HP:           5,
			Speed:        5.5,
			FireCooldown: 8,
			HurtCooldown: 40,
			DashCells:    2,
		},
		Enemy: EnemyConfig{
			HP:            2,
			Speed:         3.2,
			HurtCooldown:  12,
			HitRadius:     12,
			ContactRadius: 22,
			Initial: []CellConfig{
				{Row: 4, Col: 10},
				{Row: 8, Col: 6},
				{Row: 10, Col: 12},
			},
		},
		Projectile: ProjectileConfig{
			Speed:        12,
			LifeFrames:   120,
			Damage:       1,
			Radius:       5,
			BoundsMargin: 10,
		},
		Spawner: SpawnerConfig{
			Interval:          180,
			IntervalMin:       40,
			IntervalDecay:     0.5,
			LevelIntervalStep: 10,
			Batch:             1,
			SafeDistance:      6,
			MaxTries:          40,
		},
		Levels: LevelConfig{
			KillsToNext: 10,
			Growth:      1.5,
		},
		Animation: AnimationConfig{
			Speed: 6,
			Frames: map[string]int{
				AnimHeroIdle:    4,
				AnimHeroWalk:    4,
				AnimHeroHurt:    2,
				AnimEnemyAppear: 4,
				AnimEnemyWalk:   4,
				AnimEnemyDie:    5,
			},
		},
		Audio: AudioConfig{
			MenuTrack: "bgm",
			GameTrack: "bgm",
			Volume:    0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return slices.Clone(defaultZombiesYAML)
}

// Clone returns a deep copy, so presets applied to the copy leave the
// original untouched.
func (c ZombiesConfig) Clone() ZombiesConfig {
	out := c
	out.Enemy.Initial = slices.Clone(c.Enemy.Initial)
	out.Animation.Frames = maps.Clone(c.Animation.Frames)
	return out
}
