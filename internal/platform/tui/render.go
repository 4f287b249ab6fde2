package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// cellStyle is the pair of colors a run of cells shares.
type cellStyle struct {
	fg, bg core.Color
}

// style converts the pair to a lipgloss style. Unset colors keep the terminal default.
func (c cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.fg.IsSet() {
		s = s.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if c.bg.IsSet() {
		s = s.Background(lipgloss.Color(c.bg.Hex()))
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	styleFor := func(cs cellStyle) lipgloss.Style {
		style, ok := styles[cs]
		if !ok {
			style = cs.style()
			styles[cs] = style
		}
		return style
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		if cs, ok := rowStyle(s, y); ok {
			sb.WriteString(styleFor(cs).Render(s.Row(y)))
			continue
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

// rowStyle reports the colors of row y when every cell in it shares them.
func rowStyle(s *core.Screen, y int) (cellStyle, bool) {
	first := s.GetCell(0, y)
	cs := cellStyle{fg: first.FG, bg: first.BG}
	for x := 1; x < s.Width(); x++ {
		c := s.GetCell(x, y)
		if (cellStyle{fg: c.FG, bg: c.BG}) != cs {
			return cellStyle{}, false
		}
	}
	return cs, true
}
