package tui

import "github.com/vovakirdan/zombie-attack/internal/core"

// HeldKeys emulates key-held state. Terminals only report presses and
// auto-repeats. A lone press is down for a single tick, which the game
// reads as one step. A press arriving within the window of the previous
// one is an auto-repeat, and from then on the key stays down for the
// window after each repeat.
type HeldKeys struct {
	window int
	down   map[core.Action]int // Ticks the key still reads as held
	recent map[core.Action]int // Ticks in which another press counts as a repeat
}

// NewHeldKeys creates a tracker with the given window in ticks.
func NewHeldKeys(window int) *HeldKeys {
	return &HeldKeys{
		window: max(window, 1),
		down:   make(map[core.Action]int),
		recent: make(map[core.Action]int),
	}
}

// Press records a press or repeat of a key. A press of one direction
// releases the others.
func (h *HeldKeys) Press(a core.Action) {
	for other := range h.recent {
		if other != a {
			delete(h.recent, other)
			delete(h.down, other)
		}
	}

	if h.recent[a] > 0 {
		h.down[a] = h.window
	} else {
		h.down[a] = max(h.down[a], 1)
	}
	h.recent[a] = h.window
}

// Apply sets every held key on the frame.
func (h *HeldKeys) Apply(f *core.InputFrame) {
	for a, n := range h.down {
		if n > 0 {
			f.Set(a)
		}
	}
}

// Tick ages every key by one tick.
func (h *HeldKeys) Tick() {
	age(h.down)
	age(h.recent)
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.down)
	clear(h.recent)
}

func age(m map[core.Action]int) {
	for a := range m {
		m[a]--
		if m[a] <= 0 {
			delete(m, a)
		}
	}
}
