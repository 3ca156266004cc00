package zombies

import "github.com/vovakirdan/zombie-attack/internal/config"

// Animations knows how many frames each named animation has. A length of
// zero means the animation is missing and renderers draw a placeholder.
type Animations struct {
	speed   int
	lengths map[string]int
}

// NewAnimations builds the table from configuration.
func NewAnimations(cfg config.AnimationConfig) Animations {
	lengths := make(map[string]int, len(cfg.Frames))
	for name, n := range cfg.Frames {
		lengths[name] = max(n, 0)
	}
	return Animations{speed: max(cfg.Speed, 1), lengths: lengths}
}

// Speed returns the ticks per animation frame.
func (a Animations) Speed() int { return a.speed }

// Len returns the frame count of the named animation.
func (a Animations) Len(name string) int { return a.lengths[name] }

// FrameIndex wraps an ever-growing frame counter into an animation of the
// given length. Empty animations always index 0.
func FrameIndex(frame, length int) int {
	if length <= 0 {
		return 0
	}
	return frame % length
}

// animator is a per-entity frame counter.
type animator struct {
	frame int // Unbounded; wrapped only when drawing
	timer int
}

// advance counts one tick and steps the frame every speed ticks.
func (a *animator) advance(speed int) {
	a.timer++
	if a.timer >= speed {
		a.timer = 0
		a.frame++
	}
}

// restart rewinds to the first frame of a new animation.
func (a *animator) restart() {
	a.frame = 0
	a.timer = 0
}
