// Package shared holds what every screen needs: the profile store, the
// story session, reading preferences and the story generator.
package shared

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathstory/mathstory/internal/profile"
	"github.com/mathstory/mathstory/internal/reader"
	"github.com/mathstory/mathstory/internal/scoreboard"
	"github.com/mathstory/mathstory/internal/session"
	"github.com/mathstory/mathstory/internal/storygen"
)

// DefaultTimeout bounds one generation request.
const DefaultTimeout = 90 * time.Second

// GenericError is the only generation failure text users see.
const GenericError = "Hov, der skete en fejl. Prøv igen eller vælg et andet emne."

// Deps is shared by pointer across all screens of one program run.
type Deps struct {
	Profile   *profile.Store
	Session   *session.Session
	Prefs     reader.Preferences
	Generator storygen.Generator
	Topics    *storygen.TopicRandomizer
	Logger    *slog.Logger
	Timeout   time.Duration
}

// New wires a session that records into profile.
func New(p *profile.Store, gen storygen.Generator, topics *storygen.TopicRandomizer, logger *slog.Logger) *Deps {
	if logger == nil {
		logger = slog.Default()
	}
	if topics == nil {
		topics = storygen.NewTopicRandomizer(nil)
	}
	return &Deps{
		Profile:   p,
		Session:   session.New(p, nil),
		Prefs:     reader.DefaultPreferences(),
		Generator: gen,
		Topics:    topics,
		Logger:    logger,
		Timeout:   DefaultTimeout,
	}
}

// Board is the scoreboard for the active user.
func (d *Deps) Board() scoreboard.Board {
	return scoreboard.Build(d.Profile.Scores())
}

// StoryResultMsg carries the outcome of one generation request.
type StoryResultMsg struct {
	Token uint64
	Story *storygen.Story
	Err   error
}

// Generate starts a request for topic and returns the command running it.
func (d *Deps) Generate(topic string) tea.Cmd {
	token := d.Session.Begin(topic)
	gen, timeout, logger := d.Generator, d.Timeout, d.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		story, err := gen.Generate(ctx, topic)
		if err != nil {
			logger.Error("story generation failed", "token", token, "error", err)
		} else {
			logger.Info("story generated", "token", token, "title", story.Title,
				"words", story.WordCount(), "elapsed", time.Since(start))
		}
		return StoryResultMsg{Token: token, Story: story, Err: err}
	}
}

// Apply feeds msg to the session. It reports false for stale results.
func (d *Deps) Apply(msg StoryResultMsg) bool {
	if !d.Session.Complete(msg.Token, msg.Story, msg.Err) {
		d.Logger.Debug("discarding stale story result", "token", msg.Token, "latest", d.Session.Token())
		return false
	}
	return true
}

// Logout clears the active profile and everything tied to it.
func (d *Deps) Logout(ctx context.Context) error {
	d.Session.Reset()
	d.Prefs = reader.DefaultPreferences()
	return d.Profile.Logout(ctx)
}
