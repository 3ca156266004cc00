package zombies

import (
	"github.com/vovakirdan/zombie-attack/internal/config"
	"github.com/vovakirdan/zombie-attack/internal/core"
)

// Projectile is a shot travelling in a straight line.
type Projectile struct {
	pos    core.Vec
	vel    core.Vec
	life   int
	damage int
	radius float64
	alive  bool
}

// NewProjectile fires from origin along dir. The direction is normalized; a
// zero direction yields a stationary shot that only waits out its lifetime.
func NewProjectile(origin, dir core.Vec, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{
		pos:    origin,
		vel:    dir.Normalize().Scale(cfg.Speed),
		life:   cfg.LifeFrames,
		damage: cfg.Damage,
		radius: cfg.Radius,
		alive:  true,
	}
}

// Pos returns the position in world pixels.
func (p *Projectile) Pos() core.Vec { return p.pos }

// Velocity returns the per-tick displacement.
func (p *Projectile) Velocity() core.Vec { return p.vel }

// Life returns the remaining ticks.
func (p *Projectile) Life() int { return p.life }

// Alive reports whether the shot is still in flight.
func (p *Projectile) Alive() bool { return p.alive }

// update moves the shot and expires it when its life runs out or it leaves
// the w×h world by more than margin pixels.
func (p *Projectile) update(w, h, margin float64) {
	if !p.alive {
		return
	}
	p.pos = p.pos.Add(p.vel)
	p.life--
	if p.life <= 0 ||
		p.pos.X < -margin || p.pos.X > w+margin ||
		p.pos.Y < -margin || p.pos.Y > h+margin {
		p.alive = false
	}
}

// collides reports whether the shot overlaps an enemy. Stationary shots
// never hit anything.
func (p *Projectile) collides(e *Enemy, hitRadius float64) bool {
	if p.vel.IsZero() {
		return false
	}
	return p.pos.Dist(e.Pos()) < p.radius+hitRadius
}
