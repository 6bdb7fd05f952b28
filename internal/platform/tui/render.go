package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
// ColorDefault has no entry and leaves the terminal color alone.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorNavy:    lipgloss.Color("18"),
	core.ColorGray:    lipgloss.Color("245"),
}

// colorPair identifies a cell style.
type colorPair struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a foreground/background pair.
func styleFor(p colorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := colorCodes[p.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colorCodes[p.bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
