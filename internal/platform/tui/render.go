package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombie-attack/internal/core"
)

// palette maps screen colours to ANSI 256-colour codes.
var (
	palette = map[core.Color]string{
		core.ColorRed:          "1",
		core.ColorGreen:        "2",
		core.ColorYellow:       "3",
		core.ColorBlue:         "4",
		core.ColorCyan:         "6",
		core.ColorWhite:        "7",
		core.ColorBrightRed:    "9",
		core.ColorBrightYellow: "11",
		core.ColorBrightCyan:   "14",
		core.ColorBrightWhite:  "15",
		core.ColorDarkGreen:    "22",
		core.ColorOrange:       "208",
		core.ColorGray:         "245",
	}
	bold = map[core.Color]bool{
		core.ColorBrightRed:  true,
		core.ColorBrightCyan: true,
	}
)

var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(palette)+1)
	out[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		out[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code)).Bold(bold[c])
	}
	return out
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return styles[core.ColorDefault]
}

// RenderScreen turns a screen buffer into terminal text, one styled span
// per run of same-coloured cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			span.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				span.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(color).Render(span.String()))
		}
	}
	return sb.String()
}
