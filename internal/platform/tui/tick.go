// Package tui runs a game in the terminal with Bubble Tea. It owns the tick
// loop, turns keys and mouse events into input frames and draws the game's
// screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie-attack/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameInterval is the length of one tick. Non-positive rates fall back to
// the default rate.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// holdTicks converts a hold window to whole ticks, never less than one.
func holdTicks(window time.Duration, tickRate int) int {
	return max(int(window/frameInterval(tickRate)), 1)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
