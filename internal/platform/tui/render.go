package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickout/internal/core"
)

// styleKey identifies a run of cells that share one style.
type styleKey struct {
	fg   core.Color
	bold bool
}

// cellStyle builds the lipgloss style for a cell on the given background.
func cellStyle(k styleKey, bg core.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Bold(k.bold)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	bg := s.Background()
	styles := make(map[styleKey]lipgloss.Style)

	for y, ny := 0, s.Height(); y < ny; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{fg: cell.Color, bold: cell.Bold}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{fg: cell.Color, bold: cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = cellStyle(start, bg)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
