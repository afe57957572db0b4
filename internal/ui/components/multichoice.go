package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mathstory/mathstory/internal/ui/theme"
)

// OptionLabels letter the options of a multiple-choice question.
var OptionLabels = []string{"A", "B", "C", "D"}

// ChoiceState is what the owner knows about the answer so far.
type ChoiceState struct {
	// Chosen is the last picked option, or -1.
	Chosen int

	// Solved is set once the correct option was picked.
	Solved bool

	// Correct is the right option; only shown once Solved.
	Correct int
}

// ChoiceMsg is emitted when the user picks an option.
type ChoiceMsg struct {
	Index int
}

// MultiChoice is a lettered option list. It only reports picks; the
// owner decides whether they are right.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
}

func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{Question: question, Options: options}
}

// Update moves the cursor with up/down and picks with Enter, a letter or
// a digit.
func (m MultiChoice) Update(msg tea.Msg, state ChoiceState) (MultiChoice, tea.Cmd) {
	if state.Solved {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := strings.ToLower(kmsg.String())
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		return m, nil
	case "enter":
		return m, pick(m.Cursor)
	}

	if len(key) == 1 {
		i := -1
		switch c := key[0]; {
		case c >= 'a' && c <= 'd':
			i = int(c - 'a')
		case c >= '1' && c <= '4':
			i = int(c - '1')
		}
		if i >= 0 && i < len(m.Options) {
			m.Cursor = i
			return m, pick(i)
		}
	}
	return m, nil
}

func pick(i int) tea.Cmd {
	return func() tea.Msg { return ChoiceMsg{Index: i} }
}

// View lists the options. A wrong pick is marked red. Once solved only
// the correct option is shown, highlighted.
func (m MultiChoice) View(state ChoiceState) string {
	var b strings.Builder
	b.WriteString(theme.StoryTitle.Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		label := OptionLabels[i%len(OptionLabels)]

		if state.Solved {
			if i == state.Correct {
				b.WriteString(theme.Correct.Render(fmt.Sprintf("✓ %s)  %s", label, opt)))
				b.WriteString("\n")
			}
			continue
		}

		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case i == state.Chosen:
			b.WriteString(theme.Incorrect.Render(line))
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
