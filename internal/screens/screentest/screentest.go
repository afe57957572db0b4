// Package screentest has helpers for driving screens in tests.
package screentest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathstory/mathstory/internal/profile"
	"github.com/mathstory/mathstory/internal/screen"
	"github.com/mathstory/mathstory/internal/screens/shared"
	"github.com/mathstory/mathstory/internal/store"
	"github.com/mathstory/mathstory/internal/storygen"
)

// Generator returns a fixed story or error and records topics.
type Generator struct {
	Story  *storygen.Story
	Err    error
	Topics []string
}

func (g *Generator) Generate(_ context.Context, topic string) (*storygen.Story, error) {
	g.Topics = append(g.Topics, topic)
	if g.Err != nil {
		return nil, g.Err
	}
	s := *g.Story
	return &s, nil
}

// Story is a small valid story.
func Story() *storygen.Story {
	return &storygen.Story{
		Title:         "Fyrets hemmelighed",
		StoryText:     "Ida fandt et kort i sandet. Hun fulgte det mod fyret.\nDer ventede en gåde.",
		RealWorldFact: "Danmarks ældste fyr blev tændt i 1560.",
		MathProblem: storygen.MathProblem{
			Question: "Hvor mange meter gik Ida i alt?",
			Answer:   42.5,
			Unit:     "meter",
		},
		ReadingQuestion: storygen.ReadingQuestion{
			Question:           "Hvad fandt Ida?",
			Options:            []string{"En sko", "Et kort", "En nøgle", "En bog"},
			CorrectOptionIndex: 1,
		},
	}
}

// Deps returns deps over an in-memory store with user logged in.
func Deps(t *testing.T, gen storygen.Generator, user string) *shared.Deps {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	p := profile.NewStore(db.KV())
	if user != "" {
		if err := p.Login(context.Background(), user); err != nil {
			t.Fatalf("login: %v", err)
		}
	}
	return shared.New(p, gen, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Key builds a key press for a printable rune.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Ctrl builds ctrl+r style presses.
func Ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func Enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func Tab() tea.KeyPressMsg   { return tea.KeyPressMsg{Code: tea.KeyTab} }

// Run executes cmd and flattens batches into the resulting messages.
func Run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Run(c)...)
	}
	return out
}

// Find returns the first message of type T.
func Find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Stub is a screen that renders its name.
type Stub struct{ Name string }

func (s *Stub) Init() tea.Cmd                           { return nil }
func (s *Stub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *Stub) View(int, int) string                    { return s.Name }
func (s *Stub) Title() string                           { return s.Name }
