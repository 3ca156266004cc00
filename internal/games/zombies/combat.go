package zombies

import "github.com/vovakirdan/zombie-attack/internal/audio"

// resolveShots checks every live shot against live, non-dying enemies in
// spawn order. A shot damages at most one enemy.
func (g *Game) resolveShots() {
	for _, p := range g.projectiles {
		if !p.alive {
			continue
		}
		for _, e := range g.enemies {
			if !e.alive || e.Dying() {
				continue
			}
			if !p.collides(e, g.cfg.Enemy.HitRadius) {
				continue
			}
			g.hitEnemy(e, p.damage)
			p.alive = false
			break
		}
	}
}

// hitEnemy applies damage. A lethal hit starts the death animation, or
// removes the enemy at once when there is none to play.
func (g *Game) hitEnemy(e *Enemy, damage int) {
	e.hp -= damage
	e.hurtCooldown = g.cfg.Enemy.HurtCooldown
	g.sfx.Play(audio.SoundHit)

	if e.hp > 0 {
		return
	}
	if g.anims.Len(EnemyDie.Animation()) > 0 {
		e.startDying(g.sfx)
		return
	}
	e.alive = false
	e.playDeathSound(g.sfx)
}

// prune drops dead enemies and spent shots and returns how many enemies
// were removed.
func (g *Game) prune() int {
	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.alive {
			alive = append(alive, e)
		}
	}
	removed := len(g.enemies) - len(alive)
	clear(g.enemies[len(alive):])
	g.enemies = alive

	shots := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.alive {
			shots = append(shots, p)
		}
	}
	clear(g.projectiles[len(shots):])
	g.projectiles = shots

	return removed
}

// resolveContacts lets every enemy within reach bite the player. Dying
// enemies still bite. The first lethal bite ends the run and the sweep.
func (g *Game) resolveContacts() {
	p := g.player
	for _, e := range g.enemies {
		if p.hurtCooldown != 0 {
			return
		}
		if e.Pos().Dist(p.Pos()) >= g.cfg.Enemy.ContactRadius {
			continue
		}
		p.hp--
		p.hurtCooldown = g.cfg.Player.HurtCooldown
		g.sfx.Play(audio.SoundHit)
		if p.hp <= 0 {
			p.alive = false
			g.endRun()
			return
		}
	}
}
