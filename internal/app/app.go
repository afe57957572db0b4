package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathstory/mathstory/internal/profile"
	"github.com/mathstory/mathstory/internal/router"
	"github.com/mathstory/mathstory/internal/scoreboard"
	"github.com/mathstory/mathstory/internal/screen"
	"github.com/mathstory/mathstory/internal/screens/home"
	"github.com/mathstory/mathstory/internal/screens/login"
	"github.com/mathstory/mathstory/internal/screens/shared"
	"github.com/mathstory/mathstory/internal/screens/story"
	"github.com/mathstory/mathstory/internal/storygen"
	"github.com/mathstory/mathstory/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	Profile   *profile.Store
	Generator storygen.Generator
	Topics    *storygen.TopicRandomizer
	Logger    *slog.Logger

	// Timeout bounds one generation request; zero means the default.
	Timeout time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   *shared.Deps
	router *router.Router
	width  int
	height int
}

// newAppModel restores the last active profile and starts at home when
// there is one, otherwise at login.
func newAppModel(ctx context.Context, opts Options) (AppModel, error) {
	deps := shared.New(opts.Profile, opts.Generator, opts.Topics, opts.Logger)
	if opts.Timeout > 0 {
		deps.Timeout = opts.Timeout
	}

	restored, err := opts.Profile.Restore(ctx)
	if err != nil {
		return AppModel{}, fmt.Errorf("restore profile: %w", err)
	}

	var loginScreen, homeScreen func() screen.Screen
	storyScreen := func() screen.Screen { return story.New(deps) }
	homeScreen = func() screen.Screen { return home.New(deps, storyScreen, loginScreen) }
	loginScreen = func() screen.Screen { return login.New(deps, homeScreen) }

	initial := loginScreen()
	if restored {
		deps.Logger.Info("restored profile", "user", opts.Profile.User())
		initial = homeScreen()
	}
	return AppModel{deps: deps, router: router.New(initial)}, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if modal, ok := m.router.Active().(screen.Modal); ok && modal.Modal() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	user, points := m.deps.Profile.User(), ""
	if user != "" {
		points = scoreboard.FormatPoints(m.deps.Board().Total)
	}
	header := layout.RenderHeader(title, user, points, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Afslut"}}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	model, err := newAppModel(ctx, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
