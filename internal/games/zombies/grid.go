package zombies

import (
	"fmt"
	"math"

	"github.com/vovakirdan/zombie-attack/internal/config"
	"github.com/vovakirdan/zombie-attack/internal/core"
)

// Cell is a grid address.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is the fixed tile layout of the playfield.
type Grid struct {
	Rows, Cols int
	Tile       int // Side of a cell in pixels
}

// NewGrid derives the grid from the world size.
func NewGrid(w config.WorldConfig) Grid {
	return Grid{Rows: w.Rows(), Cols: w.Cols(), Tile: w.Tile}
}

// Size returns the world size in pixels.
func (g Grid) Size() (w, h float64) {
	return float64(g.Cols * g.Tile), float64(g.Rows * g.Tile)
}

// Center returns the pixel centre of a cell.
func (g Grid) Center(c Cell) core.Vec {
	half := g.Tile / 2
	return core.Vec{
		X: float64(c.Col*g.Tile + half),
		Y: float64(c.Row*g.Tile + half),
	}
}

// Clamp moves a cell address onto the grid.
func (g Grid) Clamp(c Cell) Cell {
	return Cell{
		Row: core.Clamp(c.Row, 0, g.Rows-1),
		Col: core.Clamp(c.Col, 0, g.Cols-1),
	}
}

// Contains reports whether the cell lies on the grid.
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Border lists the edge cells: top and bottom rows column by column, then
// the left and right columns row by row. Corners appear twice.
func (g Grid) Border() []Cell {
	cells := make([]Cell, 0, 2*(g.Rows+g.Cols))
	for col := range g.Cols {
		cells = append(cells, Cell{0, col}, Cell{g.Rows - 1, col})
	}
	for row := range g.Rows {
		cells = append(cells, Cell{row, 0}, Cell{row, g.Cols - 1})
	}
	return cells
}

// CellDist is the Euclidean distance between two cells, in cells.
func CellDist(a, b Cell) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}
