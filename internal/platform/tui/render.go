package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubblepop/internal/core"
)

var allColors = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue,
	core.ColorMagenta, core.ColorCyan, core.ColorWhite, core.ColorOrange,
	core.ColorPink, core.ColorPurple, core.ColorTeal, core.ColorGray,
}

// colorStyles maps core.Color to lipgloss styles. lipgloss downsamples the
// hex colors to whatever the terminal profile supports.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for _, c := range allColors {
		r, g, b := c.RGB()
		hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
