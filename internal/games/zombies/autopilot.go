package zombies

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/zombie-attack/internal/core"
)

// Autopilot produces scripted input: it starts a run from the menu, keeps
// the trigger held on the nearest zombie and steps away from anything that
// gets close. Given the same seed it always produces the same inputs.
type Autopilot struct {
	rng     *rand.Rand
	restart bool
	frame   core.InputFrame
}

// NewAutopilot creates an autopilot. With restart set it acknowledges the
// game-over screen and starts again.
func NewAutopilot(seed int64, restart bool) *Autopilot {
	return &Autopilot{
		rng:     rand.New(rand.NewSource(seed)),
		restart: restart,
		frame:   core.NewInputFrame(),
	}
}

// panicCells is how close a zombie may come before the autopilot retreats.
const panicCells = 3

// Next returns the input for the coming tick.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	a.frame.Clear()

	switch g.Phase() {
	case PhaseMenu:
		a.frame.Set(core.ActionConfirm)
		return a.frame.Clone()
	case PhaseGameOver:
		a.frame.PointerHeld = false
		if a.restart {
			a.frame.Set(core.ActionConfirm)
		}
		return a.frame.Clone()
	}

	p := g.Player()
	target := nearestEnemy(g.Enemies(), p.Pos())
	if target == nil {
		a.frame.PointerHeld = false
		return a.frame.Clone()
	}

	if !a.frame.PointerHeld {
		a.frame.Press(target.Pos())
	} else {
		a.frame.Pointer = target.Pos()
	}

	if CellDist(target.Cell(), p.Cell()) <= panicCells {
		a.frame.Set(flee(p.Cell(), target.Cell(), g.Grid()))
		if a.rng.Intn(8) == 0 {
			a.frame.Set(core.ActionDash)
		}
	} else if a.rng.Intn(4) == 0 {
		a.frame.Set([]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}[a.rng.Intn(4)])
	}

	return a.frame.Clone()
}

func nearestEnemy(enemies []*Enemy, from core.Vec) *Enemy {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, e := range enemies {
		if e.Dying() {
			continue
		}
		if d := e.Pos().Dist(from); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// flee picks the direction that moves furthest from the threat without
// walking into a wall.
func flee(me, threat Cell, grid Grid) core.Action {
	moves := []struct {
		action core.Action
		dr, dc int
	}{
		{core.ActionUp, -1, 0},
		{core.ActionDown, 1, 0},
		{core.ActionLeft, 0, -1},
		{core.ActionRight, 0, 1},
	}

	best := core.ActionNone
	bestDist := CellDist(me, threat)
	for _, m := range moves {
		next := Cell{me.Row + m.dr, me.Col + m.dc}
		if !grid.Contains(next) {
			continue
		}
		if d := CellDist(next, threat); d > bestDist {
			best, bestDist = m.action, d
		}
	}
	return best
}
