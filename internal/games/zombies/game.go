// Package zombies implements Zombie Attack, a top-down grid shooter.
//
// The hero walks cell to cell, shoots toward the pointer and survives waves
// of zombies that spawn away from it and chase it down. Everything here is
// single-threaded and advanced one tick at a time through Step.
package zombies

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/zombie-attack/internal/audio"
	"github.com/vovakirdan/zombie-attack/internal/config"
	"github.com/vovakirdan/zombie-attack/internal/core"
)

// Audio is the fire-and-forget sound API the game drives. *audio.Jukebox
// implements it.
type Audio interface {
	Play(name string)
	PlayOr(name, fallback string)
	PlayMusic(track string, volume float64)
	StopMusic()
	Muted() bool
	SetMuted(muted bool)
}

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Menu button labels.
const (
	ButtonStart = "Start"
	ButtonSound = "Sound"
	ButtonExit  = "Exit"
)

// Button is a clickable menu rectangle in world pixels.
type Button struct {
	Label string
	Rect  core.Rect
}

// Game implements Zombie Attack.
type Game struct {
	cfg    config.ZombiesConfig
	grid   Grid
	anims  Animations
	sfx    Audio
	logger *log.Logger

	rng   *rand.Rand
	runID uuid.UUID
	tick  uint64

	phase            Phase
	menuMusicStarted bool
	quit             bool

	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	spawner     *Spawner
	nextEnemyID int

	buttons []Button
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default tunables.
func WithConfig(cfg config.ZombiesConfig) Option {
	return func(g *Game) {
		g.cfg = cfg.Clone()
	}
}

// WithAudio sets the sound collaborator.
func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.sfx = a
		}
	}
}

// WithLogger sets the logger for transitions and level-ups.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game sitting in the menu. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultZombiesConfig(),
		sfx:    audio.NewJukebox(nil),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.grid = NewGrid(g.cfg.World)
	g.anims = NewAnimations(g.cfg.Animation)
	g.buttons = menuButtons(g.grid)
	return g
}

func menuButtons(grid Grid) []Button {
	w, _ := grid.Size()
	x := int(w)/2 - 100
	return []Button{
		{Label: ButtonStart, Rect: core.NewRect(x, 160, 200, 56)},
		{Label: ButtonSound, Rect: core.NewRect(x, 240, 200, 56)},
		{Label: ButtonExit, Rect: core.NewRect(x, 320, 200, 56)},
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "zombies" }

// Title returns the display name.
func (g *Game) Title() string { return "Zombie Attack" }

// Reset seeds the game and returns it to the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.phase = PhaseMenu
	g.menuMusicStarted = false
	g.quit = false
	g.newRun()
}

// newRun puts the world in its starting layout.
func (g *Game) newRun() {
	g.player = newPlayer(g.grid, g.cfg.Player)
	g.enemies = g.enemies[:0]
	g.projectiles = g.projectiles[:0]
	g.spawner = newSpawner(g.cfg, g.rng)
	g.nextEnemyID = 0
	for _, c := range g.cfg.Enemy.Initial {
		g.addEnemy(Cell{c.Row, c.Col})
	}
}

func (g *Game) addEnemy(at Cell) *Enemy {
	g.nextEnemyID++
	e := newEnemy(g.nextEnemyID, g.grid, at, g.cfg.Enemy)
	g.enemies = append(g.enemies, e)
	return e
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseMenu:
		g.stepMenu(input)
	case PhasePlaying:
		g.stepPlaying(input)
	case PhaseGameOver:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionFire) {
			g.enterMenu()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(input core.InputFrame) {
	if !g.menuMusicStarted {
		g.menuMusicStarted = true
		g.sfx.PlayMusic(g.cfg.Audio.MenuTrack, g.cfg.Audio.Volume)
	}

	action := ""
	if input.Has(core.ActionFire) {
		if b, ok := g.ButtonAt(input.Pointer); ok {
			action = b.Label
		}
	}
	switch {
	case input.Has(core.ActionConfirm):
		action = ButtonStart
	case input.Has(core.ActionToggleSound):
		action = ButtonSound
	}

	switch action {
	case ButtonStart:
		g.startRun()
	case ButtonSound:
		g.toggleSound()
	case ButtonExit:
		g.quit = true
	}
}

// ButtonAt hit-tests the menu buttons at a world position.
func (g *Game) ButtonAt(p core.Vec) (Button, bool) {
	for _, b := range g.buttons {
		if b.Rect.ContainsPoint(p) {
			return b, true
		}
	}
	return Button{}, false
}

// Buttons returns the menu buttons.
func (g *Game) Buttons() []Button { return g.buttons }

func (g *Game) startRun() {
	g.newRun()
	g.runID = uuid.New()
	g.sfx.StopMusic()
	g.sfx.PlayMusic(g.cfg.Audio.GameTrack, g.cfg.Audio.Volume)
	g.menuMusicStarted = false
	g.phase = PhasePlaying
	g.logger.Info("run started", "run", g.runID, "enemies", len(g.enemies))
}

func (g *Game) endRun() {
	g.phase = PhaseGameOver
	g.logger.Info("game over",
		"run", g.runID,
		"level", g.spawner.Level(),
		"kills", g.spawner.Kills(),
		"ticks", g.tick,
	)
}

func (g *Game) enterMenu() {
	g.phase = PhaseMenu
	g.sfx.StopMusic()
	g.sfx.PlayMusic(g.cfg.Audio.MenuTrack, g.cfg.Audio.Volume)
	g.menuMusicStarted = true
}

// toggleSound flips mute. Unmuting restarts the menu track; muting silences
// music and any fallback sound.
func (g *Game) toggleSound() {
	muted := !g.sfx.Muted()
	g.sfx.SetMuted(muted)
	if muted {
		g.sfx.StopMusic()
	} else {
		g.sfx.PlayMusic(g.cfg.Audio.MenuTrack, g.cfg.Audio.Volume)
	}
	g.logger.Debug("sound toggled", "muted", muted)
}

func (g *Game) stepPlaying(input core.InputFrame) {
	p := g.player

	if input.Has(core.ActionDash) {
		g.dash()
	}
	if input.Has(core.ActionFire) && p.canFire() {
		g.fire(input.Pointer)
	}

	if p.AtTarget() {
		c := p.Cell()
		switch {
		case input.Has(core.ActionUp):
			p.SetTarget(Cell{c.Row - 1, c.Col})
		case input.Has(core.ActionDown):
			p.SetTarget(Cell{c.Row + 1, c.Col})
		case input.Has(core.ActionLeft):
			p.SetTarget(Cell{c.Row, c.Col - 1})
		case input.Has(core.ActionRight):
			p.SetTarget(Cell{c.Row, c.Col + 1})
		}
	}

	p.update(g.anims.Speed())

	if input.PointerHeld && p.canFire() {
		g.fire(input.Pointer)
	}

	if n := g.spawner.Tick(); n > 0 {
		for range n {
			g.addEnemy(g.spawner.Place(g.grid, p.Cell()))
		}
		g.logger.Debug("wave spawned", "count", n, "interval", g.spawner.Interval())
	}

	for _, e := range g.enemies {
		e.update(g.anims, p, g.sfx)
	}

	w, h := g.grid.Size()
	for _, shot := range g.projectiles {
		shot.update(w, h, g.cfg.Projectile.BoundsMargin)
	}

	g.resolveShots()

	if removed := g.prune(); removed > 0 {
		if gained := g.spawner.AddKills(removed); gained > 0 {
			g.logger.Info("level up",
				"level", g.spawner.Level(),
				"next", g.spawner.KillsToNext(),
				"batch", g.spawner.Batch(),
			)
		}
	}

	g.resolveContacts()
}

// dash retargets the player along its facing, ignoring arrival.
func (g *Game) dash() {
	p := g.player
	c := p.Cell()
	n := g.cfg.Player.DashCells
	switch p.Facing() {
	case FacingUp:
		c.Row -= n
	case FacingDown:
		c.Row += n
	case FacingLeft:
		c.Col -= n
	case FacingRight:
		c.Col += n
	}
	p.SetTarget(c)
}

// fire shoots from the player toward a world position.
func (g *Game) fire(at core.Vec) {
	p := g.player
	origin := p.Pos()
	g.projectiles = append(g.projectiles, NewProjectile(origin, at.Sub(origin), g.cfg.Projectile))
	p.fireCooldown = g.cfg.Player.FireCooldown
	g.sfx.Play(audio.SoundUIToggle)
}

// State returns the aggregate state for the host.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.phase == PhaseGameOver,
		Quit:     g.quit,
	}
	if g.spawner != nil {
		st.Level = g.spawner.Level()
		st.Kills = g.spawner.Kills()
	}
	return st
}

// Phase returns the top-level state.
func (g *Game) Phase() Phase { return g.phase }

// RunID identifies the current run in logs. It is zero before the first start.
func (g *Game) RunID() uuid.UUID { return g.runID }

// Grid returns the playfield layout.
func (g *Game) Grid() Grid { return g.grid }

// Player returns the hero.
func (g *Game) Player() *Player { return g.player }

// Enemies returns the live enemy collection in spawn order.
func (g *Game) Enemies() []*Enemy { return g.enemies }

// Projectiles returns the shots in flight.
func (g *Game) Projectiles() []*Projectile { return g.projectiles }

// Spawner returns the wave and level controller.
func (g *Game) Spawner() *Spawner { return g.spawner }

// Muted reports whether sound is off.
func (g *Game) Muted() bool { return g.sfx.Muted() }
