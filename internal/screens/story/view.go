package story

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathstory/mathstory/internal/challenge"
	"github.com/mathstory/mathstory/internal/reader"
	"github.com/mathstory/mathstory/internal/storygen"
	"github.com/mathstory/mathstory/internal/ui/components"
	"github.com/mathstory/mathstory/internal/ui/theme"
)

// storyTop is the number of page lines above the story text: title,
// blank, accessibility bar, blank.
const storyTop = 4

func textWidth(width int) int {
	return components.ContentWidth(width) - 4
}

func (s *StoryScreen) storyLines() []string {
	st := s.deps.Session.Story()
	if st == nil {
		return nil
	}
	return reader.Layout(st.StoryText, s.deps.Prefs, textWidth(s.lastW))
}

func (s *StoryScreen) storyLineCount() int {
	return len(s.storyLines())
}

// followRuler scrolls so the ruler band stays on screen.
func (s *StoryScreen) followRuler() {
	line := storyTop + s.deps.Prefs.RulerLine
	if line-1 < s.scroll {
		s.scroll = max(line-1, 0)
	}
	if s.lastH > 0 && line+1 >= s.scroll+s.lastH {
		s.scroll = line + 2 - s.lastH
	}
}

func (s *StoryScreen) View(width, height int) string {
	s.lastW, s.lastH = width, height

	st := s.deps.Session.Story()
	if st == nil {
		return components.Centered(theme.Hint.Render("Ingen historie endnu."), width, height)
	}

	cw := components.ContentWidth(width)
	page := s.page(st, cw)
	s.pageLen = len(page)
	s.scrollBy(0)

	end := min(s.scroll+height, len(page))
	visible := page[s.scroll:end]

	return lipgloss.NewStyle().
		PaddingLeft(max((width-cw)/2, 0)).
		Render(strings.Join(visible, "\n"))
}

// page renders the whole story screen as lines; View shows a window of
// it.
func (s *StoryScreen) page(st *storygen.Story, cw int) []string {
	prefs := s.deps.Prefs

	var b []string
	b = append(b, theme.Title.Render(st.Title))
	b = append(b, "")
	b = append(b, s.renderControls())
	b = append(b, "")

	lines := s.storyLines()
	for i, l := range lines {
		switch {
		case reader.InRuler(prefs, i, len(lines)):
			b = append(b, theme.RulerLine.Width(textWidth(s.lastW)).Render(l))
		case prefs.ReadingRuler:
			b = append(b, theme.DimLine.Render(l))
		default:
			b = append(b, theme.Body.Render(l))
		}
	}
	b = append(b, "")

	fact := theme.FactHeading.Render("Virkelighedens Verden") + "\n" +
		strings.Join(reader.LayoutFact(st.RealWorldFact, prefs, textWidth(s.lastW)-4), "\n")
	b = append(b, splitLines(theme.FactBox.Width(cw).Render(fact))...)
	b = append(b, "")

	b = append(b, splitLines(s.renderReading(cw))...)
	b = append(b, "")
	b = append(b, splitLines(s.renderMath(st, cw))...)

	if s.status != "" {
		b = append(b, "", theme.ErrorText.Render(s.status))
	}
	return b
}

func (s *StoryScreen) renderControls() string {
	prefs := s.deps.Prefs
	size := fmt.Sprintf("Tekst %.1fx", prefs.FontSize)
	parts := []string{
		theme.Body.Render(size),
		theme.Toggle("Én sætning per linje", prefs.SplitSentences),
		theme.Toggle("Læselineal", prefs.ReadingRuler),
	}
	bar := strings.Join(parts, "   ")
	if s.focus == focusText {
		return theme.Selected.Render("▸ ") + bar
	}
	return "  " + bar
}

func (s *StoryScreen) renderReading(cw int) string {
	state := s.choiceState()
	body := s.choice.View(state)

	r := s.deps.Session.Reading()
	switch {
	case r != nil && r.Solved():
		body += "\n\n" + theme.Correct.Render("Korrekt! Godt læst!")
	case state.Chosen >= 0:
		body += "\n\n" + theme.Incorrect.Render("Det var ikke helt rigtigt. Prøv at læse teksten igen.")
	}

	return components.Card(s.heading("Læseforståelse", focusReading), body, cw)
}

func (s *StoryScreen) renderMath(st *storygen.Story, cw int) string {
	m := s.deps.Session.Math()
	body := theme.Body.Italic(true).Render(st.MathProblem.Question) + "\n\n"

	switch {
	case m != nil && m.Solved():
		answer := strconv.FormatFloat(st.MathProblem.Answer, 'f', -1, 64)
		body += theme.Correct.Render("Helt rigtigt! 🎉") + "\n" +
			theme.Body.Render(strings.TrimSpace("Svaret var "+answer+" "+st.MathProblem.Unit)) + "\n" +
			theme.Points.Render("Score opdateret!")
	default:
		field := s.input.View()
		if st.MathProblem.Unit != "" {
			field += " " + theme.Hint.Render(st.MathProblem.Unit)
		}
		body += field
		if m != nil && m.State() == challenge.Incorrect {
			body += "\n\n" + theme.Incorrect.Render("Det var ikke helt rigtigt. Prøv igen! (Husk at bruge punktum eller komma)")
		}
	}

	return components.Card(s.heading("Dagens Udfordring", focusMath), body, cw)
}

func (s *StoryScreen) heading(title string, f focus) string {
	if s.focus == f {
		return "▸ " + title
	}
	return title
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
