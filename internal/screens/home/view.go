package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathstory/mathstory/internal/screens/shared"
	"github.com/mathstory/mathstory/internal/session"
	"github.com/mathstory/mathstory/internal/ui/components"
	"github.com/mathstory/mathstory/internal/ui/theme"
)

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if h.confirm.Open {
		return h.confirm.View(width)
	}

	var sections []string
	sections = append(sections, theme.Title.Render("Fortællinger & Tal"))
	sections = append(sections, theme.Hint.Render("Skriv et emne, få en spændende historie, og løs gåden til sidst."))
	sections = append(sections, "")
	sections = append(sections, components.Card("", h.input.View(), cw))

	switch h.deps.Session.State() {
	case session.Loading:
		sections = append(sections, h.spinner.View()+" "+theme.Body.Render("Skriver din historie..."))
	case session.Error:
		sections = append(sections, theme.ErrorText.Render(shared.GenericError))
	default:
		if h.deps.Session.Story() != nil {
			sections = append(sections, theme.Hint.Render("Ctrl+O for at læse \""+h.deps.Session.Story().Title+"\" igen"))
		} else {
			sections = append(sections, "")
		}
	}

	if h.status != "" {
		sections = append(sections, theme.ErrorText.Render(h.status))
	}

	top := strings.Join(sections, "\n")

	if board := h.deps.Board(); !board.Empty() {
		// Header row, borders and the total line take about six rows.
		rows := max(height-lipgloss.Height(top)-8, 1)
		top += "\n\n" + components.Scoreboard(board, cw, rows)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 0, 0, max((width-cw)/2, 0)).
		Render(top)
}
