package components

import (
	"charm.land/lipgloss/v2"

	"github.com/mathstory/mathstory/internal/ui/theme"
)

// ContentWidth is the column budget for the story column inside a frame
// of frameWidth.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 40), 96)
}

// Card wraps content in a rounded box of total width w, with an optional
// heading.
func Card(heading, content string, w int) string {
	body := content
	if heading != "" {
		body = theme.SectionHeading.Render(heading) + "\n\n" + content
	}
	return theme.Section.Width(w).Render(body)
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
