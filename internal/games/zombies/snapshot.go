package zombies

import "github.com/vovakirdan/zombie-attack/internal/core"

// HUD is the status line shown while playing.
type HUD struct {
	HP          int
	Level       int
	Kills       int
	KillsToNext int // Kills still needed for the next level
	Enemies     int
}

// HUD returns the current status values.
func (g *Game) HUD() HUD {
	h := HUD{Enemies: len(g.enemies)}
	if g.player != nil {
		h.HP = g.player.hp
	}
	if g.spawner != nil {
		h.Level = g.spawner.Level()
		h.Kills = g.spawner.Kills()
		h.KillsToNext = g.spawner.KillsToNext() - g.spawner.Kills()
	}
	return h
}

// EntityView is what a renderer needs to draw one character.
type EntityView struct {
	ID        int // Zero for the player
	Cell      Cell
	Pos       core.Vec
	Facing    Facing
	State     string
	Animation string
	Frame     int // Already wrapped into the animation length
	Frames    int // Animation length; zero means draw a placeholder
	HP        int
	Hurt      bool
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Muted       bool
	HUD         HUD
	Player      EntityView
	Enemies     []EntityView
	Projectiles []core.Vec
	Interval    float64
	Batch       int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.tick,
		Phase: g.phase,
		Muted: g.sfx.Muted(),
		HUD:   g.HUD(),
	}
	if g.player != nil {
		s.Player = g.playerView()
	}
	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, g.enemyView(e))
	}
	for _, p := range g.projectiles {
		s.Projectiles = append(s.Projectiles, p.pos)
	}
	if g.spawner != nil {
		s.Interval = g.spawner.Interval()
		s.Batch = g.spawner.Batch()
	}
	return s
}

func (g *Game) playerView() EntityView {
	p := g.player
	anim := p.state.Animation()
	n := g.anims.Len(anim)
	return EntityView{
		Cell:      p.Cell(),
		Pos:       p.Pos(),
		Facing:    p.Facing(),
		State:     p.state.String(),
		Animation: anim,
		Frame:     FrameIndex(p.anim.frame, n),
		Frames:    n,
		HP:        p.hp,
		Hurt:      p.hurtCooldown > 0,
	}
}

func (g *Game) enemyView(e *Enemy) EntityView {
	anim := e.state.Animation()
	n := g.anims.Len(anim)
	return EntityView{
		ID:        e.id,
		Cell:      e.Cell(),
		Pos:       e.Pos(),
		Facing:    e.Facing(),
		State:     e.state.String(),
		Animation: anim,
		Frame:     FrameIndex(e.anim.frame, n),
		Frames:    n,
		HP:        e.hp,
		Hurt:      e.hurtCooldown > 0,
	}
}
