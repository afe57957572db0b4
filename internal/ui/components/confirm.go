package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathstory/mathstory/internal/ui/theme"
)

// ConfirmResult is emitted when a Confirm dialog is answered.
type ConfirmResult struct {
	ID string
	OK bool
}

// Confirm is a yes/no question. ID tells the owner which question was
// answered.
type Confirm struct {
	ID       string
	Question string
	Yes, No  string
	Open     bool
}

func NewConfirm(id, question string) Confirm {
	return Confirm{ID: id, Question: question, Yes: "Ja", No: "Nej"}
}

func (c *Confirm) Show() { c.Open = true }

// Update answers the dialog on y/j/Enter (yes) and n/Esc (no). Other keys
// are swallowed while it is open.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if !c.Open {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch strings.ToLower(kmsg.String()) {
	case "y", "j", "enter":
		c.Open = false
		return c, c.answer(true)
	case "n", "esc":
		c.Open = false
		return c, c.answer(false)
	}
	return c, nil
}

func (c Confirm) answer(ok bool) tea.Cmd {
	id := c.ID
	return func() tea.Msg { return ConfirmResult{ID: id, OK: ok} }
}

func (c Confirm) View(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(c.Question))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[J] " + c.Yes))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] " + c.No))
	return b.String()
}
