package zombies

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zombie-attack/internal/core"
)

func TestViewportFit(t *testing.T) {
	grid := testGrid()

	vp, ok := NewViewport(grid, 80, 24)
	require.True(t, ok)
	assert.Equal(t, 2, vp.TileW)
	assert.Equal(t, 1, vp.TileH)
	assert.Equal(t, 24, vp.OffX)
	assert.Equal(t, 6, vp.OffY)

	vp, ok = NewViewport(grid, 120, 40)
	require.True(t, ok)
	assert.Equal(t, 6, vp.TileW)
	assert.Equal(t, 3, vp.TileH)

	w, h := MinScreenSize(grid)
	_, ok = NewViewport(grid, w, h)
	assert.True(t, ok)
	_, ok = NewViewport(grid, w-1, h)
	assert.False(t, ok)
}

func TestViewportRoundTrip(t *testing.T) {
	vp, ok := NewViewport(testGrid(), 100, 40)
	require.True(t, ok)

	for y := vp.OffY; y < vp.OffY+12*vp.TileH; y++ {
		for x := vp.OffX; x < vp.OffX+16*vp.TileW; x++ {
			gx, gy := vp.WorldToScreen(vp.ScreenToWorld(x, y))
			require.Equal(t, x, gx)
			require.Equal(t, y, gy)
		}
	}
}

func TestScreenToWorldHitsMenuButton(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Find the Start label and click it.
	for y := range screen.Height() {
		row := screen.Row(y)
		x := strings.Index(row, ButtonStart)
		if x < 0 {
			continue
		}
		in := core.NewInputFrame()
		in.Press(g.ScreenToWorld(len([]rune(row[:x])), y, 80, 24))
		g.Step(in)
		assert.Equal(t, PhasePlaying, g.Phase())
		return
	}
	t.Fatal("start button not rendered")
}

func TestRenderMenu(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Zombie Attack")
	assert.Contains(t, out, "Start")
	assert.Contains(t, out, "Sound: ON")
	assert.Contains(t, out, "Exit")
}

func TestRenderPlaying(t *testing.T) {
	g, _ := startedGame(t)
	g.addEnemy(Cell{4, 10})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "HP: 5")
	assert.Contains(t, screen.Row(0), "Enemies: 1")

	vp, _ := NewViewport(g.grid, 80, 24)
	x, y := vp.WorldToScreen(g.Player().Pos())
	assert.Equal(t, '▼', screen.Get(x, y))
	assert.Equal(t, core.ColorBrightCyan, screen.GetCell(x, y).Color)

	x, y = vp.WorldToScreen(g.Enemies()[0].Pos())
	assert.Equal(t, '.', screen.Get(x, y))
}

func TestRenderPlaceholderForMissingFrames(t *testing.T) {
	g, _ := startedGame(t)
	g.anims = NewAnimations(g.cfg.Animation)
	delete(g.anims.lengths, "hero_idle")

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	vp, _ := NewViewport(g.grid, 80, 24)
	x, y := vp.WorldToScreen(g.Player().Pos())
	assert.Equal(t, placeholderGlyph, screen.Get(x, y))
}

func TestRenderGameOver(t *testing.T) {
	g, _ := startedGame(t)
	g.player.hp = 1
	g.addEnemy(Cell{3, 3})
	g.Step(idle())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}
