package zombies

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/zombie-attack/internal/config"
)

// Spawner owns the wave timer and the level curve.
type Spawner struct {
	cfg      config.SpawnerConfig
	growth   float64
	escalate bool // False freezes interval decay and level bonuses
	rng      *rand.Rand

	timer       int
	interval    float64
	batch       int
	level       int
	kills       int
	killsToNext int
}

func newSpawner(cfg config.ZombiesConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:         cfg.Spawner,
		growth:      cfg.Levels.Growth,
		escalate:    cfg.Difficulty.Enabled,
		rng:         rng,
		interval:    cfg.Spawner.Interval,
		batch:       cfg.Spawner.Batch,
		level:       1,
		killsToNext: cfg.Levels.KillsToNext,
	}
}

// Level returns the current level, starting at 1.
func (s *Spawner) Level() int { return s.level }

// Kills returns the enemies removed so far.
func (s *Spawner) Kills() int { return s.kills }

// KillsToNext returns the kill count of the next level-up.
func (s *Spawner) KillsToNext() int { return s.killsToNext }

// Interval returns the ticks between waves.
func (s *Spawner) Interval() float64 { return s.interval }

// Batch returns the enemies created per wave.
func (s *Spawner) Batch() int { return s.batch }

// Tick counts one tick and returns how many enemies the caller should spawn
// now, zero between waves.
func (s *Spawner) Tick() int {
	s.timer++
	if s.timer < int(s.interval) {
		return 0
	}
	s.timer = 0
	if s.escalate {
		s.interval = math.Max(s.cfg.IntervalMin, s.interval-s.cfg.IntervalDecay)
	}
	return s.batch
}

// AddKills counts removed enemies and applies every level-up they earn.
// It returns the number of levels gained.
func (s *Spawner) AddKills(n int) int {
	s.kills += n
	gained := 0
	for s.kills >= s.killsToNext {
		s.level++
		gained++
		if s.escalate {
			s.batch++
			s.interval = math.Max(s.cfg.IntervalMin, s.interval-s.cfg.LevelIntervalStep)
		}
		next := int(math.Floor(float64(s.killsToNext) * s.growth))
		if next <= s.killsToNext {
			next = s.killsToNext + 1
		}
		s.killsToNext = next
	}
	return gained
}

// Place picks a spawn cell at least the safe distance away from the player.
// Random probing comes first, then a shuffled scan of the border, and as a
// last resort any random cell. The result is always on the grid.
func (s *Spawner) Place(grid Grid, player Cell) Cell {
	far := func(c Cell) bool {
		return CellDist(c, player) >= s.cfg.SafeDistance
	}

	for range s.cfg.MaxTries {
		c := s.randomCell(grid)
		if far(c) {
			return c
		}
	}

	border := grid.Border()
	s.rng.Shuffle(len(border), func(i, j int) {
		border[i], border[j] = border[j], border[i]
	})
	for _, c := range border {
		if far(c) {
			return c
		}
	}

	return s.randomCell(grid)
}

func (s *Spawner) randomCell(grid Grid) Cell {
	return Cell{Row: s.rng.Intn(grid.Rows), Col: s.rng.Intn(grid.Cols)}
}
