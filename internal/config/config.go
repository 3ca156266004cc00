// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ZombiesConfig contains all tunables of the Zombie Attack simulation.
type ZombiesConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Levels     LevelConfig      `yaml:"levels"`
	Animation  AnimationConfig  `yaml:"animation"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield. Rows and columns are derived from the
// pixel size with integer division by the tile size.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Tile   int `yaml:"tile"`
}

// Rows returns the number of grid rows.
func (w WorldConfig) Rows() int {
	if w.Tile <= 0 {
		return 0
	}
	return w.Height / w.Tile
}

// Cols returns the number of grid columns.
func (w WorldConfig) Cols() int {
	if w.Tile <= 0 {
		return 0
	}
	return w.Width / w.Tile
}

// CellConfig is a (row, col) grid address.
type CellConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// PlayerConfig defines the hero.
type PlayerConfig struct {
	Start        CellConfig `yaml:"start"`
	HP           int        `yaml:"hp"`
	Speed        float64    `yaml:"speed"`
	FireCooldown int        `yaml:"fire_cooldown"` // Ticks between shots
	HurtCooldown int        `yaml:"hurt_cooldown"` // Ticks of invulnerability after a hit
	DashCells    int        `yaml:"dash_cells"`
}

// EnemyConfig defines zombies.
type EnemyConfig struct {
	HP            int          `yaml:"hp"`
	Speed         float64      `yaml:"speed"`
	HurtCooldown  int          `yaml:"hurt_cooldown"`
	HitRadius     float64      `yaml:"hit_radius"`     // Added to the projectile radius
	ContactRadius float64      `yaml:"contact_radius"` // Distance at which a zombie bites
	Initial       []CellConfig `yaml:"initial"`        // Fixed spawns at game start
}

// ProjectileConfig defines shots.
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`
	LifeFrames   int     `yaml:"life_frames"`
	Damage       int     `yaml:"damage"`
	Radius       float64 `yaml:"radius"`
	BoundsMargin float64 `yaml:"bounds_margin"`
}

// SpawnerConfig defines the wave timer and placement.
type SpawnerConfig struct {
	Interval          float64 `yaml:"interval"`            // Initial ticks between waves
	IntervalMin       float64 `yaml:"interval_min"`        // Floor for the interval
	IntervalDecay     float64 `yaml:"interval_decay"`      // Subtracted after every wave
	LevelIntervalStep float64 `yaml:"level_interval_step"` // Subtracted on every level-up
	Batch             int     `yaml:"batch"`               // Initial enemies per wave
	SafeDistance      float64 `yaml:"safe_distance"`       // Minimum distance to the player, in cells
	MaxTries          int     `yaml:"max_tries"`           // Random placement attempts before the border pass
}

// LevelConfig defines the kill thresholds.
type LevelConfig struct {
	KillsToNext int     `yaml:"kills_to_next"`
	Growth      float64 `yaml:"growth"`
}

// AnimationConfig defines frame timing and how many frames each animation has.
// A missing or zero entry means the animation is unavailable.
type AnimationConfig struct {
	Speed  int            `yaml:"speed"` // Ticks per frame
	Frames map[string]int `yaml:"frames"`
}

// Animation names understood by the game.
const (
	AnimHeroIdle    = "hero_idle"
	AnimHeroWalk    = "hero_walk"
	AnimHeroHurt    = "hero_hurt"
	AnimEnemyAppear = "enemy_appear"
	AnimEnemyWalk   = "enemy_walk"
	AnimEnemyDie    = "enemy_die"
)

// AudioConfig defines the music tracks and volume.
type AudioConfig struct {
	MenuTrack string  `yaml:"menu_track"`
	GameTrack string  `yaml:"game_track"`
	Volume    float64 `yaml:"volume"`
}

// DifficultyConfig toggles the escalating spawn curve.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a simulation.
func (c ZombiesConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.World.Tile > 0, "world.tile must be positive, got %d", c.World.Tile)
	check(c.World.Rows() > 0 && c.World.Cols() > 0, "world must hold at least one cell")
	check(c.Player.HP > 0, "player.hp must be positive, got %d", c.Player.HP)
	check(c.Player.Speed > 0, "player.speed must be positive")
	check(c.Enemy.HP > 0, "enemy.hp must be positive, got %d", c.Enemy.HP)
	check(c.Enemy.Speed > 0, "enemy.speed must be positive")
	check(c.Projectile.LifeFrames > 0, "projectile.life_frames must be positive")
	check(c.Spawner.IntervalMin >= 1, "spawner.interval_min must be at least 1")
	check(c.Spawner.Interval >= c.Spawner.IntervalMin, "spawner.interval must not be below interval_min")
	check(c.Spawner.Batch >= 0, "spawner.batch must not be negative")
	check(c.Spawner.MaxTries >= 0, "spawner.max_tries must not be negative")
	check(c.Levels.KillsToNext > 0, "levels.kills_to_next must be positive")
	check(c.Levels.Growth >= 1, "levels.growth must be at least 1")
	check(c.Animation.Speed > 0, "animation.speed must be positive")

	return errors.Join(errs...)
}
