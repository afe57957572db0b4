package login

import (
	"context"
	"strings"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathstory/mathstory/internal/profile"
	"github.com/mathstory/mathstory/internal/router"
	"github.com/mathstory/mathstory/internal/screen"
	"github.com/mathstory/mathstory/internal/screens/shared"
	"github.com/mathstory/mathstory/internal/ui/components"
	"github.com/mathstory/mathstory/internal/ui/layout"
	"github.com/mathstory/mathstory/internal/ui/theme"
)

const nameLimit = 40

// LoginScreen asks for a display name and hands over to the home screen.
type LoginScreen struct {
	deps        *shared.Deps
	homeFactory func() screen.Screen
	input       components.TextInput
	errMsg      string
	done        bool
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

func New(deps *shared.Deps, homeFactory func() screen.Screen) *LoginScreen {
	return &LoginScreen{
		deps:        deps,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Hvad hedder du?", false, nameLimit),
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LoginScreen) Title() string {
	return "Log ind"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Afslut"},
	}
}

// ready reports whether the typed name is long enough to submit.
func (l *LoginScreen) ready() bool {
	return utf8.RuneCountInString(strings.TrimSpace(l.input.Value())) >= profile.MinNameLength
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if ok && kmsg.String() == "enter" {
		return l.submit()
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	if ok {
		l.errMsg = ""
	}
	return l, cmd
}

func (l *LoginScreen) submit() (screen.Screen, tea.Cmd) {
	if l.done || !l.ready() {
		return l, nil
	}
	if err := l.deps.Profile.Login(context.Background(), l.input.Value()); err != nil {
		l.deps.Logger.Error("login failed", "error", err)
		l.errMsg = "Kunne ikke gemme dit navn. Prøv igen."
		return l, nil
	}
	l.deps.Logger.Info("logged in", "user", l.deps.Profile.User())
	l.done = true
	home := l.homeFactory()
	return l, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("MathStory"))
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("Indtast dit navn for at starte dit eventyr og gemme dine point."))
	sections = append(sections, "")
	sections = append(sections, l.input.View())
	sections = append(sections, "")

	switch {
	case l.errMsg != "":
		sections = append(sections, theme.ErrorText.Render(l.errMsg))
	case l.ready():
		sections = append(sections, theme.Selected.Render("▸ Enter for at starte"))
	default:
		sections = append(sections, theme.Hint.Render("Mindst 2 tegn"))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 4).
		Render(strings.Join(sections, "\n"))

	return components.Centered(card, width, height)
}
