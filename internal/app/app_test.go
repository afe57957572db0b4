package app

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathstory/mathstory/internal/profile"
	"github.com/mathstory/mathstory/internal/router"
	"github.com/mathstory/mathstory/internal/screens/screentest"
	"github.com/mathstory/mathstory/internal/store"
)

func newTestOptions(t *testing.T, user string) Options {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if user != "" {
		if err := profile.NewStore(db.KV()).Login(context.Background(), user); err != nil {
			t.Fatal(err)
		}
	}
	return Options{
		Profile:   profile.NewStore(db.KV()),
		Generator: &screentest.Generator{Story: screentest.Story()},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func sized(m AppModel) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func TestStartsAtLoginWithoutProfile(t *testing.T) {
	m, err := newAppModel(context.Background(), newTestOptions(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.router.Active().Title(); got != "Log ind" {
		t.Errorf("initial screen = %q, want Log ind", got)
	}
}

func TestRestoresProfile(t *testing.T) {
	m, err := newAppModel(context.Background(), newTestOptions(t, "Ida"))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.router.Active().Title(); got != "Forside" {
		t.Errorf("initial screen = %q, want Forside", got)
	}

	m = sized(m)
	view := m.render()
	for _, want := range []string{"Fortællinger & Tal", "Ida", "★ 0 point"} {
		if !strings.Contains(view, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestTooSmall(t *testing.T) {
	m, _ := newAppModel(context.Background(), newTestOptions(t, ""))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(next.(AppModel).render(), "for lille") {
		t.Error("expected the minimum size message")
	}
}

func TestEscPopsButNotAtRoot(t *testing.T) {
	m, _ := newAppModel(context.Background(), newTestOptions(t, "Ida"))

	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc at the root should do nothing")
	}

	m.router.Push(&screentest.Stub{Name: "story"})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscGoesToModalScreen(t *testing.T) {
	m, _ := newAppModel(context.Background(), newTestOptions(t, "Ida"))
	m.router.Push(&screentest.Stub{Name: "story"})
	m.router.Pop()

	m.Update(screentest.Ctrl('l'))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	msgs := screentest.Run(cmd)
	for _, msg := range msgs {
		if _, ok := msg.(router.PopScreenMsg); ok {
			t.Fatal("esc in a dialog must not pop")
		}
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newAppModel(context.Background(), newTestOptions(t, ""))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
