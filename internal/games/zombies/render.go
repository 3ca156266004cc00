package zombies

import (
	"fmt"

	"github.com/vovakirdan/zombie-attack/internal/core"
)

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

// Viewport maps world pixels onto terminal cells. A tile is drawn twice as
// wide as it is tall so the grid keeps roughly square proportions.
type Viewport struct {
	OffX, OffY   int
	TileW, TileH int // Terminal cells per tile
	tile         int
}

// NewViewport fits the grid into a screen of w×h cells. It reports false
// when not even a 2×1 tile fits.
func NewViewport(grid Grid, w, h int) (Viewport, bool) {
	if grid.Cols <= 0 || grid.Rows <= 0 || grid.Tile <= 0 {
		return Viewport{}, false
	}
	k := min(w/(grid.Cols*2), (h-hudRows)/grid.Rows)
	if k < 1 {
		return Viewport{}, false
	}
	vp := Viewport{TileW: 2 * k, TileH: k, tile: grid.Tile}
	vp.OffX = (w - grid.Cols*vp.TileW) / 2
	vp.OffY = hudRows + (h-hudRows-grid.Rows*vp.TileH)/2
	return vp, true
}

// MinScreenSize returns the smallest screen that can show the grid.
func MinScreenSize(grid Grid) (w, h int) {
	return grid.Cols * 2, grid.Rows + hudRows
}

// WorldToScreen converts a world position to a terminal cell.
func (vp Viewport) WorldToScreen(p core.Vec) (x, y int) {
	x = vp.OffX + int(p.X*float64(vp.TileW)/float64(vp.tile))
	y = vp.OffY + int(p.Y*float64(vp.TileH)/float64(vp.tile))
	return x, y
}

// ScreenToWorld converts a terminal cell to the world position of its centre.
func (vp Viewport) ScreenToWorld(x, y int) core.Vec {
	return core.Vec{
		X: (float64(x-vp.OffX) + 0.5) * float64(vp.tile) / float64(vp.TileW),
		Y: (float64(y-vp.OffY) + 0.5) * float64(vp.tile) / float64(vp.TileH),
	}
}

// RectToScreen converts a world rectangle to terminal cells.
func (vp Viewport) RectToScreen(r core.Rect) core.Rect {
	x0, y0 := vp.WorldToScreen(core.Vec{X: float64(r.X), Y: float64(r.Y)})
	x1, y1 := vp.WorldToScreen(core.Vec{X: float64(r.Right()), Y: float64(r.Bottom())})
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// ScreenToWorld maps a terminal cell on a w×h screen to world pixels. The
// host uses it to translate mouse events.
func (g *Game) ScreenToWorld(x, y, w, h int) core.Vec {
	vp, ok := NewViewport(g.grid, w, h)
	if !ok {
		return core.Vec{X: -1, Y: -1}
	}
	return vp.ScreenToWorld(x, y)
}

// Glyph tables, indexed by the wrapped animation frame.
var (
	heroGlyphs = map[Facing][]rune{
		FacingUp:    {'▲', '△'},
		FacingDown:  {'▼', '▽'},
		FacingLeft:  {'◀', '◁'},
		FacingRight: {'▶', '▷'},
	}
	enemyAppearGlyphs = []rune{'.', '∘', 'o', 'z'}
	enemyWalkGlyphs   = []rune{'Z', 'z'}
	enemyDieGlyphs    = []rune{'X', 'x', '*', '+', '.'}
)

const placeholderGlyph = '●'

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp, ok := NewViewport(g.grid, dst.Width(), dst.Height())
	if !ok {
		w, h := MinScreenSize(g.grid)
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need at least %dx%d", w, h), core.ColorGray)
		return
	}

	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst, vp)
	case PhasePlaying:
		g.renderWorld(dst, vp)
		g.renderHUD(dst)
	case PhaseGameOver:
		_, hpx := g.grid.Size()
		_, y := vp.WorldToScreen(core.Vec{Y: hpx / 2})
		dst.DrawTextCentered(y-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(y+1, "Click or press Enter to return to menu", core.ColorWhite)
	}
}

func (g *Game) renderMenu(dst *core.Screen, vp Viewport) {
	_, ty := vp.WorldToScreen(core.Vec{Y: 80})
	dst.DrawTextCentered(ty, "Zombie Attack", core.ColorBrightWhite)

	for _, b := range g.buttons {
		label := b.Label
		if label == ButtonSound {
			label = "Sound: ON"
			if g.sfx.Muted() {
				label = "Sound: OFF"
			}
		}
		r := vp.RectToScreen(b.Rect)
		dst.DrawBox(r, core.ColorCyan)
		cx, cy := r.Center()
		dst.DrawTextColor(cx-len([]rune(label))/2, cy, label, core.ColorWhite)
	}
}

func (g *Game) renderWorld(dst *core.Screen, vp Viewport) {
	for row := range g.grid.Rows {
		for col := range g.grid.Cols {
			r := vp.RectToScreen(core.NewRect(col*g.grid.Tile, row*g.grid.Tile, g.grid.Tile, g.grid.Tile))
			if (row+col)%2 == 0 {
				dst.DrawRect(r, '░', core.ColorDarkGreen)
			}
		}
	}

	for _, p := range g.projectiles {
		x, y := vp.WorldToScreen(p.pos)
		dst.SetColor(x, y, '•', core.ColorBrightYellow)
	}

	for _, e := range g.enemies {
		v := g.enemyView(e)
		x, y := vp.WorldToScreen(v.Pos)
		dst.SetColor(x, y, enemyGlyph(v), enemyColor(v))
	}

	if g.player != nil {
		v := g.playerView()
		x, y := vp.WorldToScreen(v.Pos)
		c := core.ColorBrightCyan
		if v.Hurt {
			c = core.ColorRed
		}
		dst.SetColor(x, y, pick(heroGlyphs[v.Facing], v), c)
	}
}

func enemyGlyph(v EntityView) rune {
	switch v.State {
	case EnemyAppear.String():
		return pick(enemyAppearGlyphs, v)
	case EnemyDie.String():
		return pick(enemyDieGlyphs, v)
	default:
		return pick(enemyWalkGlyphs, v)
	}
}

func enemyColor(v EntityView) core.Color {
	switch {
	case v.State == EnemyDie.String():
		return core.ColorGray
	case v.Hurt:
		return core.ColorOrange
	default:
		return core.ColorGreen
	}
}

// pick chooses the glyph for a frame, or the placeholder when the animation
// has no frames.
func pick(glyphs []rune, v EntityView) rune {
	if v.Frames == 0 || len(glyphs) == 0 {
		return placeholderGlyph
	}
	return glyphs[FrameIndex(v.Frame, len(glyphs))]
}

func (g *Game) renderHUD(dst *core.Screen) {
	h := g.HUD()
	line := fmt.Sprintf(" HP: %d  Level: %d  Kills: %d  Kills to next: %d  Enemies: %d",
		h.HP, h.Level, h.Kills, h.KillsToNext, h.Enemies)
	dst.DrawTextColor(0, 0, line, core.ColorBrightWhite)
}
