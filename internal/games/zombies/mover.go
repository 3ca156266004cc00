package zombies

import "github.com/vovakirdan/zombie-attack/internal/core"

// Facing is the direction a character looks.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// arriveRadius is how close to the target centre counts as arrived.
const arriveRadius = 1.5

// Mover is the grid motion shared by the player and enemies. The pixel
// position glides toward the centre of the target cell; the current cell is
// updated only when the mover snaps onto it.
type Mover struct {
	grid   Grid
	cell   Cell
	target Cell
	pos    core.Vec
	facing Facing
	speed  float64
}

// NewMover places a mover at the centre of a cell.
func NewMover(grid Grid, at Cell, speed float64) Mover {
	at = grid.Clamp(at)
	return Mover{
		grid:   grid,
		cell:   at,
		target: at,
		pos:    grid.Center(at),
		facing: FacingDown,
		speed:  speed,
	}
}

// Cell returns the current cell.
func (m *Mover) Cell() Cell { return m.cell }

// Target returns the cell being travelled to.
func (m *Mover) Target() Cell { return m.target }

// Pos returns the pixel position.
func (m *Mover) Pos() core.Vec { return m.pos }

// Facing returns the current facing.
func (m *Mover) Facing() Facing { return m.facing }

// SetTarget clamps c to the grid and starts moving toward it. Facing follows
// the dominant axis of the move measured from the current cell. Re-targeting
// the same cell is a no-op and reports false.
func (m *Mover) SetTarget(c Cell) bool {
	c = m.grid.Clamp(c)
	if c == m.target {
		return false
	}
	m.target = c

	dr := c.Row - m.cell.Row
	dc := c.Col - m.cell.Col
	if core.Abs(dr) > core.Abs(dc) {
		if dr > 0 {
			m.facing = FacingDown
		} else {
			m.facing = FacingUp
		}
	} else {
		if dc > 0 {
			m.facing = FacingRight
		} else {
			m.facing = FacingLeft
		}
	}
	return true
}

// UpdatePosition advances one tick toward the target centre. A step that
// would reach or pass the centre snaps onto it exactly.
func (m *Mover) UpdatePosition() {
	goal := m.grid.Center(m.target)
	delta := goal.Sub(m.pos)
	dist := delta.Len()

	if dist <= m.speed || dist < 1 {
		m.pos = goal
		m.cell = m.target
		return
	}
	m.pos = m.pos.Add(delta.Scale(m.speed / dist))
}

// AtTarget reports whether the mover has arrived.
func (m *Mover) AtTarget() bool {
	return m.pos.Dist(m.grid.Center(m.target)) < arriveRadius
}
