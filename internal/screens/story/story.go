package story

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/mathstory/mathstory/internal/challenge"
	"github.com/mathstory/mathstory/internal/screen"
	"github.com/mathstory/mathstory/internal/screens/shared"
	"github.com/mathstory/mathstory/internal/ui/components"
	"github.com/mathstory/mathstory/internal/ui/layout"
)

type focus int

const (
	focusText focus = iota
	focusReading
	focusMath
	focusCount
)

// StoryScreen shows the current story instance with its fact box and
// both challenges. Tab moves focus between the text, the reading
// question and the math answer field.
type StoryScreen struct {
	deps    *shared.Deps
	focus   focus
	choice  components.MultiChoice
	input   components.TextInput
	scroll  int
	status  string
	lastH   int
	lastW   int
	pageLen int
}

var _ screen.Screen = (*StoryScreen)(nil)
var _ screen.KeyHintProvider = (*StoryScreen)(nil)

func New(deps *shared.Deps) *StoryScreen {
	s := &StoryScreen{
		deps:  deps,
		input: components.NewTextInput("Indtast dit svar...", true, 24),
	}
	s.input.Blur()
	if st := deps.Session.Story(); st != nil {
		s.choice = components.NewMultiChoice(st.ReadingQuestion.Question, st.ReadingQuestion.Options)
	}
	return s
}

func (s *StoryScreen) Init() tea.Cmd {
	return nil
}

func (s *StoryScreen) Title() string {
	if st := s.deps.Session.Story(); st != nil {
		return st.Title
	}
	return "Historie"
}

func (s *StoryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Skift felt"}}
	switch s.focus {
	case focusText:
		hints = append(hints,
			layout.KeyHint{Key: "+/-", Description: "Tekststørrelse"},
			layout.KeyHint{Key: "S", Description: "Én sætning per linje"},
			layout.KeyHint{Key: "R", Description: "Læselineal"},
			layout.KeyHint{Key: "↑↓", Description: "Rul"},
		)
	case focusReading:
		hints = append(hints, layout.KeyHint{Key: "A-D", Description: "Vælg svar"})
	case focusMath:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Tjek svar"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Tilbage"})
}

func (s *StoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMsg:
		return s.selectReading(msg.Index)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.focus == focusMath {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StoryScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.deps.Session.Story() == nil {
		return s, nil
	}

	switch msg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "pgdown":
		s.scrollBy(s.lastH / 2)
		return s, nil
	case "pgup":
		s.scrollBy(-s.lastH / 2)
		return s, nil
	}

	switch s.focus {
	case focusText:
		s.handleTextKey(msg.String())
		return s, nil

	case focusReading:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg, s.choiceState())
		return s, cmd

	case focusMath:
		if msg.String() == "enter" {
			return s.submitMath()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if s.input.Edited() {
			s.deps.Session.EditMath()
		}
		return s, cmd
	}
	return s, nil
}

func (s *StoryScreen) handleTextKey(key string) {
	prefs := &s.deps.Prefs
	switch key {
	case "+", "=":
		prefs.IncreaseFont()
	case "-":
		prefs.DecreaseFont()
	case "s", "S":
		prefs.ToggleSplit()
	case "r", "R":
		prefs.ToggleRuler()
	case "up", "k":
		if prefs.ReadingRuler {
			prefs.MoveRuler(-1, s.storyLineCount())
			s.followRuler()
		} else {
			s.scrollBy(-1)
		}
	case "down", "j":
		if prefs.ReadingRuler {
			prefs.MoveRuler(1, s.storyLineCount())
			s.followRuler()
		} else {
			s.scrollBy(1)
		}
	}
	// Relayout may shorten the text under the ruler.
	prefs.MoveRuler(0, s.storyLineCount())
}

func (s *StoryScreen) setFocus(f focus) tea.Cmd {
	s.focus = f
	if f == focusMath {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

func (s *StoryScreen) choiceState() components.ChoiceState {
	r := s.deps.Session.Reading()
	if r == nil {
		return components.ChoiceState{Chosen: -1}
	}
	return components.ChoiceState{Chosen: r.Selected(), Solved: r.Solved(), Correct: r.Correct()}
}

func (s *StoryScreen) selectReading(i int) (screen.Screen, tea.Cmd) {
	out, err := s.deps.Session.SelectReading(context.Background(), i)
	s.afterAnswer(challenge.KindReading, out.Awarded, err)
	return s, nil
}

func (s *StoryScreen) submitMath() (screen.Screen, tea.Cmd) {
	m := s.deps.Session.Math()
	if m == nil || m.Solved() || s.input.Value() == "" {
		return s, nil
	}
	out, err := s.deps.Session.SubmitMath(context.Background(), s.input.Value())
	s.input.Mark(out.Correct)
	s.afterAnswer(challenge.KindMath, out.Awarded, err)
	return s, nil
}

func (s *StoryScreen) afterAnswer(kind challenge.Kind, awarded bool, err error) {
	s.status = ""
	if err != nil {
		s.deps.Logger.Error("save score failed", "kind", kind.Label(), "error", err)
		s.status = "Kunne ikke gemme dine point."
		return
	}
	if awarded {
		s.deps.Logger.Info("challenge solved", "kind", kind.Label(), "user", s.deps.Profile.User())
	}
}

func (s *StoryScreen) scrollBy(n int) {
	s.scroll = max(min(s.scroll+n, s.pageLen-s.lastH), 0)
}
