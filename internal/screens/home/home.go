package home

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathstory/mathstory/internal/router"
	"github.com/mathstory/mathstory/internal/screen"
	"github.com/mathstory/mathstory/internal/screens/shared"
	"github.com/mathstory/mathstory/internal/storygen"
	"github.com/mathstory/mathstory/internal/ui/components"
	"github.com/mathstory/mathstory/internal/ui/layout"
	"github.com/mathstory/mathstory/internal/ui/theme"
)

const (
	confirmClear  = "clear"
	confirmLogout = "logout"

	topicLimit = 200
)

// StoryFactory builds the story screen for the current story instance.
type StoryFactory func() screen.Screen

// HomeScreen picks a topic, starts generation and shows the scoreboard.
type HomeScreen struct {
	deps         *shared.Deps
	storyFactory StoryFactory
	loginFactory func() screen.Screen
	input        components.TextInput
	spinner      spinner.Model
	confirm      components.Confirm
	status       string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Modal = (*HomeScreen)(nil)

func New(deps *shared.Deps, storyFactory StoryFactory, loginFactory func() screen.Screen) *HomeScreen {
	return &HomeScreen{
		deps:         deps,
		storyFactory: storyFactory,
		loginFactory: loginFactory,
		input:        components.NewTextInput("F.eks. 'En spøgelseshistorie på et gammelt slot'...", false, topicLimit),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.deps.Session.Loading() {
		return tea.Batch(h.input.Init(), h.spinner.Tick)
	}
	return h.input.Init()
}

func (h *HomeScreen) Title() string {
	return "Forside"
}

func (h *HomeScreen) Modal() bool {
	return h.confirm.Open
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirm.Open {
		return []layout.KeyHint{
			{Key: "J", Description: "Ja"},
			{Key: "N", Description: "Nej"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Fortæl!"},
		{Key: "Ctrl+R", Description: "Overrask mig"},
	}
	if h.deps.Session.Story() != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+O", Description: "Læs historien"})
	}
	if !h.deps.Board().Empty() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+X", Description: "Nulstil score"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+L", Description: "Log ud"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Afslut"},
	)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.StoryResultMsg:
		return h.handleResult(msg)

	case spinner.TickMsg:
		if !h.deps.Session.Loading() {
			return h, nil
		}
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd

	case components.ConfirmResult:
		return h.handleConfirm(msg)

	case tea.KeyPressMsg:
		return h.handleKey(msg)
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *HomeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if h.confirm.Open {
		var cmd tea.Cmd
		h.confirm, cmd = h.confirm.Update(msg)
		return h, cmd
	}

	switch msg.String() {
	case "enter":
		return h, h.generate(storygen.ResolveTopic(h.input.Value()))
	case "ctrl+r":
		if h.deps.Session.Loading() {
			return h, nil
		}
		topic := h.deps.Topics.Topic()
		h.input.SetValue(topic)
		return h, h.generate(topic)
	case "ctrl+o":
		if h.deps.Session.Story() != nil {
			return h, h.openStory()
		}
		return h, nil
	case "ctrl+x":
		if !h.deps.Board().Empty() {
			h.confirm = components.NewConfirm(confirmClear, "Er du sikker på, at du vil slette din historik?")
			h.confirm.Show()
		}
		return h, nil
	case "ctrl+l":
		h.confirm = components.NewConfirm(confirmLogout, "Vil du logge ud?")
		h.confirm.Show()
		return h, nil
	}

	h.status = ""
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

// generate is a no-op while a request is in flight.
func (h *HomeScreen) generate(topic string) tea.Cmd {
	if h.deps.Session.Loading() {
		return nil
	}
	h.status = ""
	h.deps.Logger.Info("generating story", "topic", topic)
	return tea.Batch(h.deps.Generate(topic), h.spinner.Tick)
}

func (h *HomeScreen) handleResult(msg shared.StoryResultMsg) (screen.Screen, tea.Cmd) {
	if !h.deps.Apply(msg) {
		return h, nil
	}
	if msg.Err != nil || h.deps.Session.Story() == nil {
		return h, nil
	}
	return h, h.openStory()
}

func (h *HomeScreen) openStory() tea.Cmd {
	s := h.storyFactory()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) handleConfirm(msg components.ConfirmResult) (screen.Screen, tea.Cmd) {
	if !msg.OK {
		return h, nil
	}
	ctx := context.Background()

	switch msg.ID {
	case confirmClear:
		if err := h.deps.Profile.ClearScores(ctx); err != nil {
			h.deps.Logger.Error("clear scores failed", "error", err)
			h.status = "Kunne ikke nulstille scoren."
			return h, nil
		}
		h.deps.Logger.Info("scores cleared", "user", h.deps.Profile.User())
		return h, nil

	case confirmLogout:
		user := h.deps.Profile.User()
		if err := h.deps.Logout(ctx); err != nil {
			h.deps.Logger.Error("logout failed", "error", err)
			h.status = "Kunne ikke logge ud."
			return h, nil
		}
		h.deps.Logger.Info("logged out", "user", user)
		login := h.loginFactory()
		return h, func() tea.Msg {
			return router.ResetScreenMsg{Screen: login}
		}
	}
	return h, nil
}
