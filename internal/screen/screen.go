package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mathstory/mathstory/internal/ui/layout"
)

// Screen is one page of the terminal UI.
type Screen interface {
	// Init runs when the screen becomes active, including when a screen
	// above it is popped.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Modal is implemented by screens that sometimes need Esc for
// themselves, for example to dismiss a confirmation.
type Modal interface {
	Modal() bool
}
