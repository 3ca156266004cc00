package zombies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zombie-attack/internal/audio"
	"github.com/vovakirdan/zombie-attack/internal/config"
	"github.com/vovakirdan/zombie-attack/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func allSoundsDevice() *audio.MemoryDevice {
	return audio.NewMemoryDevice(
		[]string{audio.TrackBGM},
		[]string{audio.SoundHit, audio.SoundEnemyDie, audio.SoundUIToggle},
	)
}

func newTestGame(t *testing.T, opts ...Option) (*Game, *audio.MemoryDevice) {
	t.Helper()
	dev := allSoundsDevice()
	g := New(append([]Option{WithAudio(audio.NewJukebox(dev))}, opts...)...)
	g.Reset(testRuntime())
	return g, dev
}

// startedGame returns a game in the Playing phase with no enemies and a
// spawner that never fires.
func startedGame(t *testing.T) (*Game, *audio.MemoryDevice) {
	t.Helper()
	g, dev := newTestGame(t)
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)
	require.Equal(t, PhasePlaying, g.Phase())

	g.enemies = nil
	g.projectiles = nil
	g.spawner.interval = 1e9
	dev.Reset()
	return g, dev
}

func idle() core.InputFrame { return core.NewInputFrame() }

func TestResetStartsInMenu(t *testing.T) {
	g, _ := newTestGame(t)

	assert.Equal(t, PhaseMenu, g.Phase())
	assert.Equal(t, "zombies", g.ID())
	assert.Equal(t, "Zombie Attack", g.Title())
	assert.False(t, g.State().GameOver)
}

func TestStartRunInitialLayout(t *testing.T) {
	g, _ := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	require.Equal(t, PhasePlaying, g.Phase())
	assert.NotZero(t, g.RunID())
	assert.Equal(t, Cell{3, 3}, g.Player().Cell())
	assert.Equal(t, 5, g.Player().HP())

	cells := make([]Cell, 0, len(g.Enemies()))
	for _, e := range g.Enemies() {
		cells = append(cells, e.Cell())
	}
	assert.Equal(t, []Cell{{4, 10}, {8, 6}, {10, 12}}, cells)
	assert.Equal(t, HUD{HP: 5, Level: 1, Kills: 0, KillsToNext: 10, Enemies: 3}, g.HUD())
}

func TestShotDamagesEnemy(t *testing.T) {
	g, dev := startedGame(t)
	e := g.addEnemy(Cell{3, 4})
	require.Equal(t, 2, e.HP())

	in := core.NewInputFrame()
	in.Press(e.Pos())
	in.PointerHeld = false
	g.Step(in)
	require.Len(t, g.Projectiles(), 1)
	shot := g.Projectiles()[0]

	for range 10 {
		if !shot.Alive() {
			break
		}
		g.Step(idle())
	}

	assert.False(t, shot.Alive())
	assert.Empty(t, g.Projectiles())
	assert.Equal(t, 1, e.HP())
	assert.Equal(t, 12, e.hurtCooldown)
	assert.Equal(t, []string{audio.SoundUIToggle, audio.SoundHit}, dev.Played())
}

func TestTwoHitsThenDeathAnimation(t *testing.T) {
	g, _ := startedGame(t)
	e := g.addEnemy(Cell{3, 4})

	held := core.NewInputFrame()
	held.PointerHeld = true
	held.Pointer = e.Pos()
	for i := 0; e.HP() > 0 && i < 100; i++ {
		g.Step(held)
	}
	require.Zero(t, e.HP())
	require.True(t, e.Dying())
	g.projectiles = nil

	dieTicks := g.anims.Len(config.AnimEnemyDie) * g.anims.Speed()
	for i := 1; i < dieTicks; i++ {
		g.Step(idle())
		require.True(t, e.Alive(), "removed early at tick %d", i)
		require.Contains(t, g.Enemies(), e)
	}

	g.Step(idle())
	assert.False(t, e.Alive())
	assert.NotContains(t, g.Enemies(), e)
	assert.Equal(t, 1, g.HUD().Kills)
}

func TestLethalHitWithoutDieAnimation(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	delete(cfg.Animation.Frames, config.AnimEnemyDie)
	g, dev := newTestGame(t, WithConfig(cfg))
	e := g.addEnemy(Cell{3, 4})
	e.hp = 1

	g.hitEnemy(e, 1)

	assert.False(t, e.Alive())
	assert.Equal(t, []string{audio.SoundHit, audio.SoundEnemyDie}, dev.Played())
}

func TestDyingEnemiesIgnoreShots(t *testing.T) {
	g, _ := startedGame(t)
	dying := g.addEnemy(Cell{3, 5})
	dying.startDying(g.sfx)
	behind := g.addEnemy(Cell{3, 5})

	g.projectiles = append(g.projectiles,
		NewProjectile(dying.Pos(), core.Vec{X: 1}, g.cfg.Projectile))
	g.resolveShots()

	assert.Equal(t, 2, dying.HP())
	assert.Equal(t, 1, behind.HP())
}

func TestShotHitsOnlyFirstEnemy(t *testing.T) {
	g, _ := startedGame(t)
	first := g.addEnemy(Cell{3, 5})
	second := g.addEnemy(Cell{3, 5})

	g.projectiles = append(g.projectiles,
		NewProjectile(first.Pos(), core.Vec{X: 1}, g.cfg.Projectile))
	g.resolveShots()

	assert.Equal(t, 1, first.HP())
	assert.Equal(t, 2, second.HP())
}

func TestLethalContactEndsRun(t *testing.T) {
	g, dev := startedGame(t)
	g.player.hp = 1
	g.addEnemy(Cell{3, 3})
	g.addEnemy(Cell{3, 3})

	res := g.Step(idle())

	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 0, g.Player().HP())
	assert.Equal(t, []string{audio.SoundHit}, dev.Played(), "sweep stops at the first lethal bite")
}

func TestContactRespectsHurtCooldown(t *testing.T) {
	g, _ := startedGame(t)
	g.addEnemy(Cell{3, 3})

	g.Step(idle())
	require.Equal(t, 4, g.Player().HP())

	for range 39 {
		g.Step(idle())
	}
	assert.Equal(t, 4, g.Player().HP())
	assert.Equal(t, PlayerHurt, g.Player().State())

	g.Step(idle())
	assert.Equal(t, 3, g.Player().HP())
}

func TestDyingEnemiesStillBite(t *testing.T) {
	g, _ := startedGame(t)
	e := g.addEnemy(Cell{3, 3})
	e.startDying(g.sfx)

	g.Step(idle())

	assert.Equal(t, 4, g.Player().HP())
}

func TestKillsAndLevelUp(t *testing.T) {
	g, _ := startedGame(t)
	for range 12 {
		e := g.addEnemy(Cell{10, 14})
		e.alive = false
	}

	g.Step(idle())

	h := g.HUD()
	assert.Equal(t, 12, h.Kills)
	assert.Equal(t, 2, h.Level)
	assert.Equal(t, 3, h.KillsToNext)
	assert.Zero(t, h.Enemies)
	assert.Equal(t, 2, g.Spawner().Batch())
}

func TestSpawnerAddsWaveAwayFromPlayer(t *testing.T) {
	g, _ := startedGame(t)
	g.spawner.interval = 2

	g.Step(idle())
	require.Empty(t, g.Enemies())
	g.Step(idle())

	require.Len(t, g.Enemies(), 1)
	e := g.Enemies()[0]
	assert.GreaterOrEqual(t, CellDist(e.Cell(), g.Player().Cell()), 6.0)
	assert.Equal(t, 4, e.ID(), "ids continue after the initial enemies")
}

func TestMovementInputGatedByArrival(t *testing.T) {
	g, _ := startedGame(t)

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up)
	assert.Equal(t, Cell{2, 3}, g.Player().Target())
	assert.Equal(t, FacingUp, g.Player().Facing())

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	assert.Equal(t, Cell{2, 3}, g.Player().Target(), "input ignored mid-move")

	for range 20 {
		g.Step(idle())
	}
	g.Step(right)
	assert.Equal(t, Cell{2, 4}, g.Player().Target())
}

func TestDirectionPriority(t *testing.T) {
	g, _ := startedGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionDown)
	g.Step(in)

	assert.Equal(t, Cell{4, 3}, g.Player().Target())
}

func TestDash(t *testing.T) {
	g, _ := startedGame(t)

	dash := core.NewInputFrame()
	dash.Set(core.ActionDash)
	g.Step(dash)
	assert.Equal(t, Cell{5, 3}, g.Player().Target(), "initial facing is down")

	g.player.Mover = NewMover(g.grid, Cell{5, 1}, g.cfg.Player.Speed)
	g.player.SetTarget(Cell{5, 0})
	for range 10 {
		g.player.UpdatePosition()
	}
	g.Step(dash)
	assert.Equal(t, Cell{5, 0}, g.Player().Target(), "clamped at the left edge")
	assert.Equal(t, FacingLeft, g.Player().Facing())
}

func TestHeldFireRespectsCooldown(t *testing.T) {
	g, _ := startedGame(t)

	held := core.NewInputFrame()
	held.PointerHeld = true
	held.Pointer = core.Vec{X: 700, Y: 168}
	for range 17 {
		g.Step(held)
	}

	// Shots on ticks 1, 9 and 17.
	assert.Len(t, g.Projectiles(), 3)
}

func TestMenuMusicStartsOncePerEntry(t *testing.T) {
	g, dev := newTestGame(t)

	g.Step(idle())
	g.Step(idle())
	assert.Equal(t, []audio.Call{{Op: "music", Name: audio.TrackBGM, Volume: 0.6}}, dev.Calls())

	dev.Reset()
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	assert.Equal(t, []audio.Call{
		{Op: "stop_music"},
		{Op: "music", Name: audio.TrackBGM, Volume: 0.6},
	}, dev.Calls())

	g.phase = PhaseGameOver
	dev.Reset()
	ack := core.NewInputFrame()
	ack.Press(core.Vec{X: 10, Y: 10})
	g.Step(ack)
	require.Equal(t, PhaseMenu, g.Phase())

	g.Step(idle())
	assert.Equal(t, []audio.Call{
		{Op: "stop_music"},
		{Op: "music", Name: audio.TrackBGM, Volume: 0.6},
	}, dev.Calls())
}

func TestMenuButtons(t *testing.T) {
	press := func(t *testing.T, g *Game, label string) {
		t.Helper()
		for _, b := range g.Buttons() {
			if b.Label == label {
				x, y := b.Rect.Center()
				in := core.NewInputFrame()
				in.Press(core.Vec{X: float64(x), Y: float64(y)})
				g.Step(in)
				return
			}
		}
		t.Fatalf("no %q button", label)
	}

	t.Run("start", func(t *testing.T) {
		g, _ := newTestGame(t)
		press(t, g, ButtonStart)
		assert.Equal(t, PhasePlaying, g.Phase())
	})

	t.Run("sound", func(t *testing.T) {
		g, dev := newTestGame(t)
		g.Step(idle())
		dev.Reset()

		press(t, g, ButtonSound)
		assert.True(t, g.Muted())
		assert.Equal(t, []audio.Call{{Op: "stop_music"}}, dev.Calls())

		dev.Reset()
		press(t, g, ButtonSound)
		assert.False(t, g.Muted())
		assert.Equal(t, []audio.Call{{Op: "music", Name: audio.TrackBGM, Volume: 0.6}}, dev.Calls())
	})

	t.Run("exit", func(t *testing.T) {
		g, _ := newTestGame(t)
		press(t, g, ButtonExit)
		assert.True(t, g.State().Quit)
		assert.Equal(t, PhaseMenu, g.Phase())
	})

	t.Run("miss", func(t *testing.T) {
		g, _ := newTestGame(t)
		in := core.NewInputFrame()
		in.Press(core.Vec{X: 5, Y: 5})
		g.Step(in)
		assert.Equal(t, PhaseMenu, g.Phase())
	})
}

func TestToggleSoundKey(t *testing.T) {
	g, dev := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionToggleSound)
	g.Step(in)
	require.True(t, g.Muted())

	dev.Reset()
	in.Clear()
	in.Set(core.ActionConfirm)
	g.Step(in)
	fire := core.NewInputFrame()
	fire.Press(core.Vec{X: 700, Y: 100})
	g.Step(fire)

	assert.Empty(t, dev.Played(), "muted games stay silent")
}

func TestPlayingIgnoresMenuActions(t *testing.T) {
	g, _ := startedGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionToggleSound)
	g.Step(in)

	assert.False(t, g.Muted())
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestReplayResetsWorld(t *testing.T) {
	g, _ := startedGame(t)
	g.player.hp = 1
	g.addEnemy(Cell{3, 3})
	g.Step(idle())
	require.Equal(t, PhaseGameOver, g.Phase())

	ack := core.NewInputFrame()
	ack.Set(core.ActionConfirm)
	g.Step(ack)
	require.Equal(t, PhaseMenu, g.Phase())
	g.Step(ack)
	require.Equal(t, PhasePlaying, g.Phase())

	assert.Equal(t, 5, g.Player().HP())
	assert.Len(t, g.Enemies(), 3)
	assert.Equal(t, 1, g.Enemies()[0].ID())
	assert.Equal(t, HUD{HP: 5, Level: 1, KillsToNext: 10, Enemies: 3}, g.HUD())
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t)
		pilot := NewAutopilot(99, true)
		for range 3000 {
			g.Step(pilot.Next(g))
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	assert.Equal(t, s1, s2)
	assert.Equal(t, uint64(3000), s1.Tick)
}

func TestAutopilotStartsFromMenu(t *testing.T) {
	g, _ := newTestGame(t)
	pilot := NewAutopilot(1, false)

	in := pilot.Next(g)
	assert.True(t, in.Has(core.ActionConfirm))

	g.Step(in)
	require.Equal(t, PhasePlaying, g.Phase())

	in = pilot.Next(g)
	assert.True(t, in.PointerHeld)
	assert.True(t, in.Has(core.ActionFire))
}
