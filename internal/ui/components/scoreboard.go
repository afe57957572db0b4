package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/mathstory/mathstory/internal/scoreboard"
	"github.com/mathstory/mathstory/internal/ui/theme"
)

// Scoreboard renders the board as a titled table with at most maxRows
// entries. An empty board renders as "".
func Scoreboard(b scoreboard.Board, width, maxRows int) string {
	if b.Empty() {
		return ""
	}

	heading := theme.SectionHeading.Render("🏆 Scoreboard")
	total := theme.Points.Render(fmt.Sprintf("Total: %s point", scoreboard.FormatPoints(b.Total)))
	gap := max(width-lipgloss.Width(heading)-lipgloss.Width(total)-4, 1)

	shown := b.Entries
	if maxRows > 0 && len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	rows := make([][]string, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, []string{
			scoreboard.FormatDate(e.Time()),
			e.Title,
			fmt.Sprintf("+%d", e.Points),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Dato", "Historie", "Point").
		Rows(rows...).
		Width(width - 4).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Foreground(theme.TextDim)
			case col == 0:
				return s.Foreground(theme.TextDim)
			case col == 2:
				return s.Foreground(theme.Success).Bold(true).Align(lipgloss.Right)
			}
			return s.Foreground(theme.Text)
		})

	var out strings.Builder
	out.WriteString(heading + strings.Repeat(" ", gap) + total)
	out.WriteString("\n")
	out.WriteString(t.String())
	if hidden := len(b.Entries) - len(shown); hidden > 0 {
		out.WriteString("\n")
		out.WriteString(theme.Hint.Render(fmt.Sprintf("… og %d mere", hidden)))
	}
	return out.String()
}
