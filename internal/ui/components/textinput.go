package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathstory/mathstory/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the app's styling and optional
// decimal-only filtering.
type TextInput struct {
	Model       textinput.Model
	DecimalOnly bool
	feedback    bool
	valid       bool
}

// NewTextInput creates a focused input. charLimit <= 0 means no limit.
func NewTextInput(placeholder string, decimalOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:       ti,
		DecimalOnly: decimalOnly,
	}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards msg to the input. In decimal mode, single printable
// characters other than digits, ',', '.' and '-' are dropped. Any edit
// clears the feedback mark.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && t.DecimalOnly {
		if key := kmsg.String(); key == "space" || (len(key) == 1 && !isDecimalRune(key[0])) {
			return t, nil
		}
	}

	before := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.feedback = false
	}
	return t, cmd
}

func isDecimalRune(c byte) bool {
	return (c >= '0' && c <= '9') || c == ',' || c == '.' || c == '-'
}

func (t TextInput) View() string {
	view := t.Model.View()
	if t.feedback {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.feedback = false
}

// Mark shows a check or cross after the input until the next edit.
func (t *TextInput) Mark(valid bool) {
	t.feedback = true
	t.valid = valid
}

// Edited reports whether feedback was cleared by an edit since the last
// Mark.
func (t TextInput) Edited() bool {
	return !t.feedback
}

func (t *TextInput) Blur()         { t.Model.Blur() }
func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }
