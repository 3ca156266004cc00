package zombies

import (
	"github.com/vovakirdan/zombie-attack/internal/audio"
	"github.com/vovakirdan/zombie-attack/internal/config"
)

// EnemyState is a zombie's behaviour and animation state.
type EnemyState int

const (
	EnemyAppear EnemyState = iota
	EnemyWalk
	EnemyDie
)

func (s EnemyState) String() string {
	switch s {
	case EnemyAppear:
		return "appear"
	case EnemyWalk:
		return "walk"
	case EnemyDie:
		return "die"
	default:
		return "unknown"
	}
}

// Animation returns the animation name drawn in this state.
func (s EnemyState) Animation() string {
	switch s {
	case EnemyWalk:
		return config.AnimEnemyWalk
	case EnemyDie:
		return config.AnimEnemyDie
	default:
		return config.AnimEnemyAppear
	}
}

// territorySize is the side of the square an enemy patrols, in cells.
const territorySize = 3

// Enemy is a zombie.
type Enemy struct {
	Mover
	id           int
	anim         animator
	state        EnemyState
	hp           int
	hurtCooldown int
	alive        bool

	patrol      []Cell
	patrolIndex int

	deathSoundPlayed bool
}

func newEnemy(id int, grid Grid, at Cell, cfg config.EnemyConfig) *Enemy {
	e := &Enemy{
		Mover: NewMover(grid, at, cfg.Speed),
		id:    id,
		hp:    cfg.HP,
		alive: true,
	}
	e.patrol = patrolRoute(e.Cell())
	return e
}

// patrolRoute returns the corners of the territory anchored next to the
// spawn cell, walked in order.
func patrolRoute(spawn Cell) []Cell {
	r0 := max(1, spawn.Row-1)
	c0 := max(1, spawn.Col-1)
	last := territorySize - 1
	return []Cell{
		{r0, c0},
		{r0 + last, c0},
		{r0 + last, c0 + last},
		{r0, c0 + last},
	}
}

// ID returns the per-game spawn number.
func (e *Enemy) ID() int { return e.id }

// HP returns the remaining health.
func (e *Enemy) HP() int { return e.hp }

// State returns the behaviour state.
func (e *Enemy) State() EnemyState { return e.state }

// Alive reports whether the enemy is still part of the world.
func (e *Enemy) Alive() bool { return e.alive }

// Dying reports whether the death animation is playing.
func (e *Enemy) Dying() bool { return e.state == EnemyDie }

// update runs one tick of the state machine. A nil or dead player makes the
// enemy walk its patrol route instead of chasing.
func (e *Enemy) update(anims Animations, player *Player, sfx Audio) {
	e.anim.advance(anims.Speed())

	switch e.state {
	case EnemyAppear:
		if e.anim.frame >= anims.Len(config.AnimEnemyAppear) {
			e.state = EnemyWalk
			e.anim.frame = 0
		}

	case EnemyWalk:
		if player.Alive() {
			e.SetTarget(player.Cell())
		} else if e.AtTarget() && len(e.patrol) > 0 {
			e.patrolIndex = (e.patrolIndex + 1) % len(e.patrol)
			e.SetTarget(e.patrol[e.patrolIndex])
		}
		e.UpdatePosition()
		if e.hp <= 0 {
			e.startDying(sfx)
		}

	case EnemyDie:
		if e.anim.frame >= anims.Len(config.AnimEnemyDie) {
			e.alive = false
		}
	}

	if e.hurtCooldown > 0 {
		e.hurtCooldown--
	}
}

// startDying enters the death animation. The death sound plays once per enemy.
func (e *Enemy) startDying(sfx Audio) {
	e.playDeathSound(sfx)
	e.state = EnemyDie
	e.anim.restart()
}

func (e *Enemy) playDeathSound(sfx Audio) {
	if e.deathSoundPlayed {
		return
	}
	sfx.PlayOr(audio.SoundEnemyDie, audio.SoundUIToggle)
	e.deathSoundPlayed = true
}
