package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ultrabros/internal/core"
)

// cellStyle is the colour pair of a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return renderScreen(lipgloss.DefaultRenderer(), s)
}

// renderScreen groups adjacent cells with the same colours to minimize ANSI
// escape sequences. The renderer decides the colour profile, which differs
// per SSH session.
func renderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	styles := make(map[cellStyle]lipgloss.Style)
	styleFor := func(k cellStyle) lipgloss.Style {
		st, ok := styles[k]
		if !ok {
			st = r.NewStyle().
				Foreground(lipgloss.Color(k.fg.Hex())).
				Background(lipgloss.Color(k.bg.Hex()))
			styles[k] = st
		}
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(key).Render(run.String()))
		}
	}
	return sb.String()
}
