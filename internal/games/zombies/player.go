package zombies

import "github.com/vovakirdan/zombie-attack/internal/config"

// PlayerState is the hero's animation state.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalk
	PlayerHurt
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerWalk:
		return "walk"
	case PlayerHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// Animation returns the animation name drawn in this state.
func (s PlayerState) Animation() string {
	switch s {
	case PlayerWalk:
		return config.AnimHeroWalk
	case PlayerHurt:
		return config.AnimHeroHurt
	default:
		return config.AnimHeroIdle
	}
}

// Player is the hero.
type Player struct {
	Mover
	anim         animator
	state        PlayerState
	hp           int
	hurtCooldown int
	fireCooldown int
	alive        bool
}

func newPlayer(grid Grid, cfg config.PlayerConfig) *Player {
	return &Player{
		Mover: NewMover(grid, Cell{cfg.Start.Row, cfg.Start.Col}, cfg.Speed),
		hp:    cfg.HP,
		alive: true,
	}
}

// HP returns the remaining health.
func (p *Player) HP() int { return p.hp }

// State returns the animation state.
func (p *Player) State() PlayerState { return p.state }

// Alive reports whether the player still counts as a pursuit target.
func (p *Player) Alive() bool { return p != nil && p.alive }

// update moves the player and selects the animation state. Hurt wins while
// the cooldown runs, then walk while travelling, else idle.
func (p *Player) update(animSpeed int) {
	p.UpdatePosition()

	switch {
	case p.hurtCooldown > 0:
		p.state = PlayerHurt
		p.hurtCooldown--
	case !p.AtTarget():
		p.state = PlayerWalk
	default:
		p.state = PlayerIdle
	}

	p.anim.advance(animSpeed)

	if p.fireCooldown > 0 {
		p.fireCooldown--
	}
}

// canFire reports whether the weapon is ready.
func (p *Player) canFire() bool {
	return p.fireCooldown == 0
}
