package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zombie-attack/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hi")
	s.DrawTextColor(3, 0, "zz", core.ColorBrightRed)
	s.DrawTextColor(0, 1, "░░░", core.ColorDarkGreen)

	lines := strings.Split(RenderScreen(s), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		assert.Equal(t, 6, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, lines[0], "hi")
	assert.Contains(t, lines[0], "zz")
	assert.Contains(t, lines[1], "░░░")
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, styles[core.ColorDefault], styleFor(core.Color(200)))
	assert.True(t, styleFor(core.ColorBrightCyan).GetBold())
	assert.False(t, styleFor(core.ColorGray).GetBold())
}
