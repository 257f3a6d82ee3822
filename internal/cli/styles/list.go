package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	cursorEmpty    = "  "
	cursorSelected = "▸ " // ▸
	chevron        = "›" // ›
)

// ListRow is one rendered list item.
type ListRow struct {
	Symbol         string
	SymbolColor    string
	Title          string
	Navigable      bool
	IndicatorColor string
	Selected       bool
}

// RenderList renders rows, one per line. Navigable rows end with a chevron
// in their indicator color.
func RenderList(theme *Theme, rows []ListRow, width int) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cursor := cursorEmpty
		style := theme.ListItem
		if row.Selected {
			cursor = cursorSelected
			style = theme.ListItemSelected
		}

		var b strings.Builder
		b.WriteString(theme.Highlight.Render(cursor))
		if row.Symbol != "" {
			glyph := lipgloss.NewStyle().Foreground(theme.Color(row.SymbolColor, theme.Text))
			b.WriteString(glyph.Render(row.Symbol))
			b.WriteString(" ")
		}
		b.WriteString(row.Title)

		line := b.String()
		if row.Navigable {
			ind := lipgloss.NewStyle().Foreground(theme.Color(row.IndicatorColor, theme.Muted)).Render(chevron)
			pad := width - lipgloss.Width(line) - lipgloss.Width(ind) - 2
			if pad < 1 {
				pad = 1
			}
			line += strings.Repeat(" ", pad) + ind
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}
