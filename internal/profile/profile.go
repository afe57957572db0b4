// Package profile keeps the active display name and that user's score
// list in a key-value store, using the same keys the browser version of
// the app wrote to local storage.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mathstory/mathstory/internal/challenge"
)

const (
	// CurrentUserKey holds the active display name.
	CurrentUserKey = "mathStory_currentUser"

	scoresKeyPrefix = "mathStory_scores_"

	// MinNameLength is the shortest accepted display name, in characters.
	MinNameLength = 2
)

var (
	ErrInvalidName = fmt.Errorf("name must be at least %d characters", MinNameLength)
	ErrNotLoggedIn = errors.New("no active profile")
)

// ScoresKey is the storage key for name's score list.
func ScoresKey(name string) string {
	return scoresKeyPrefix + name
}

// NameFromScoresKey inverts ScoresKey.
func NameFromScoresKey(key string) (string, bool) {
	if !strings.HasPrefix(key, scoresKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, scoresKeyPrefix), true
}

// KeyValue is the storage the profile store needs. store.KVRepo
// satisfies it.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ScoreEntry is one solved challenge. Timestamp is Unix milliseconds.
type ScoreEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
	Points    int    `json:"points"`
}

// Time returns Timestamp as a time.Time.
func (e ScoreEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// NewScore builds the entry for solving kind on the story titled title.
func NewScore(title string, kind challenge.Kind, at time.Time) ScoreEntry {
	return ScoreEntry{
		ID:        uuid.NewString(),
		Title:     fmt.Sprintf("%s (%s)", title, kind.Label()),
		Timestamp: at.UnixMilli(),
		Points:    challenge.Points,
	}
}

// ValidateName trims name and checks its length.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

// Store is the single-user profile store. It holds the active user's
// scores in memory, newest first, and writes through on every change.
// It is not safe for concurrent use.
type Store struct {
	kv     KeyValue
	user   string
	scores []ScoreEntry
}

func NewStore(kv KeyValue) *Store {
	return &Store{kv: kv}
}

// Restore loads the persisted active user, if any. It reports whether a
// user was restored.
func (s *Store) Restore(ctx context.Context) (bool, error) {
	name, ok, err := s.kv.Get(ctx, CurrentUserKey)
	if err != nil {
		return false, fmt.Errorf("read current user: %w", err)
	}
	if !ok || strings.TrimSpace(name) == "" {
		return false, nil
	}
	scores, err := LoadScores(ctx, s.kv, name)
	if err != nil {
		return false, err
	}
	s.user, s.scores = name, scores
	return true, nil
}

// Login validates name, makes it the active profile and loads its scores.
func (s *Store) Login(ctx context.Context, name string) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, CurrentUserKey, name); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	scores, err := LoadScores(ctx, s.kv, name)
	if err != nil {
		return err
	}
	s.user, s.scores = name, scores
	return nil
}

// Logout clears the active-profile marker. Persisted scores stay.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}
	s.user, s.scores = "", nil
	return nil
}

// AppendScore prepends e and persists the whole list.
func (s *Store) AppendScore(ctx context.Context, e ScoreEntry) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	next := make([]ScoreEntry, 0, len(s.scores)+1)
	next = append(next, e)
	next = append(next, s.scores...)
	if err := saveScores(ctx, s.kv, s.user, next); err != nil {
		return err
	}
	s.scores = next
	return nil
}

// ClearScores empties the active user's list in memory and storage.
func (s *Store) ClearScores(ctx context.Context) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	if err := ClearScores(ctx, s.kv, s.user); err != nil {
		return err
	}
	s.scores = nil
	return nil
}

// User is the active display name, or "".
func (s *Store) User() string { return s.user }

func (s *Store) LoggedIn() bool { return s.user != "" }

// Scores returns a copy of the active user's list, newest first.
func (s *Store) Scores() []ScoreEntry {
	return append([]ScoreEntry(nil), s.scores...)
}

// LoadScores reads name's list. A missing key is an empty list.
func LoadScores(ctx context.Context, kv KeyValue, name string) ([]ScoreEntry, error) {
	raw, ok, err := kv.Get(ctx, ScoresKey(name))
	if err != nil {
		return nil, fmt.Errorf("read scores for %q: %w", name, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var scores []ScoreEntry
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return nil, fmt.Errorf("decode scores for %q: %w", name, err)
	}
	return scores, nil
}

// ClearScores removes name's persisted list.
func ClearScores(ctx context.Context, kv KeyValue, name string) error {
	if err := kv.Delete(ctx, ScoresKey(name)); err != nil {
		return fmt.Errorf("clear scores for %q: %w", name, err)
	}
	return nil
}

func saveScores(ctx context.Context, kv KeyValue, name string, scores []ScoreEntry) error {
	b, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := kv.Set(ctx, ScoresKey(name), string(b)); err != nil {
		return fmt.Errorf("save scores for %q: %w", name, err)
	}
	return nil
}
