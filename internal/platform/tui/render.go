package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// styles caches one lipgloss style per core.Color.
var styles = newPalette()

// smallStyle is used for the "terminal too small" notice.
var smallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.ANSI())).Italic(true)

func newPalette() map[core.Color]lipgloss.Style {
	p := map[core.Color]lipgloss.Style{}
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		p[c] = style.Bold(c.Bright())
	}
	return p
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := styles[c]; ok {
		return style
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles one row, one style run per stretch of equally colored cells.
func renderRow(s *core.Screen, y int) string {
	var (
		out strings.Builder
		run strings.Builder
		cur core.Color
	)
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(styleFor(cur).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != cur {
			flush()
			cur = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return out.String()
}
