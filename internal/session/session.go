// Package session owns the story instance lifecycle: one generated story,
// its two challenges, and the sequence token that decides which
// generation response is allowed to replace it.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/mathstory/mathstory/internal/challenge"
	"github.com/mathstory/mathstory/internal/profile"
	"github.com/mathstory/mathstory/internal/storygen"
)

// ScoreRecorder persists awarded points. *profile.Store satisfies it.
type ScoreRecorder interface {
	AppendScore(ctx context.Context, e profile.ScoreEntry) error
}

// Session is driven from the Bubble Tea update loop and is not safe for
// concurrent use. Generation runs elsewhere; only its result is fed back
// through Complete.
type Session struct {
	recorder ScoreRecorder
	now      func() time.Time

	token uint64
	topic string
	state LoadingState
	err   error

	story   *storygen.Story
	math    *challenge.Math
	reading *challenge.Reading
}

// New returns an idle session. now defaults to time.Now.
func New(recorder ScoreRecorder, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{recorder: recorder, now: now}
}

// Begin starts a new request for topic and returns its token. The current
// story instance is discarded immediately.
func (s *Session) Begin(topic string) uint64 {
	s.token++
	s.topic = topic
	s.state = Loading
	s.err = nil
	s.story, s.math, s.reading = nil, nil, nil
	return s.token
}

// Complete applies the result of the request identified by token. It
// returns false, changing nothing, when a newer request has been issued.
func (s *Session) Complete(token uint64, story *storygen.Story, err error) bool {
	if token != s.token || s.state != Loading {
		return false
	}
	if err == nil && story == nil {
		err = fmt.Errorf("generation returned no story")
	}
	if err != nil {
		s.state = Error
		s.err = err
		return true
	}
	s.state = Success
	s.story = story
	s.math = challenge.NewMath(story.MathProblem.Answer, story.MathProblem.Unit)
	s.reading = challenge.NewReading(story.ReadingQuestion.CorrectOptionIndex, len(story.ReadingQuestion.Options))
	return true
}

// SubmitMath checks input against the math challenge. On the solving
// attempt one score entry is recorded; a recorder error is returned but
// the challenge stays solved.
func (s *Session) SubmitMath(ctx context.Context, input string) (Outcome, error) {
	if s.math == nil {
		return Outcome{}, nil
	}
	awarded := s.math.Submit(input)
	out := Outcome{Awarded: awarded, Correct: s.math.Solved()}
	if awarded {
		return out, s.record(ctx, challenge.KindMath)
	}
	return out, nil
}

// EditMath clears incorrect math feedback.
func (s *Session) EditMath() {
	if s.math != nil {
		s.math.Edit()
	}
}

// SelectReading picks option index in the reading challenge.
func (s *Session) SelectReading(ctx context.Context, index int) (Outcome, error) {
	if s.reading == nil {
		return Outcome{}, nil
	}
	awarded := s.reading.Select(index)
	out := Outcome{Awarded: awarded, Correct: s.reading.Solved()}
	if awarded {
		return out, s.record(ctx, challenge.KindReading)
	}
	return out, nil
}

func (s *Session) record(ctx context.Context, kind challenge.Kind) error {
	if s.recorder == nil {
		return nil
	}
	e := profile.NewScore(s.story.Title, kind, s.now())
	if err := s.recorder.AppendScore(ctx, e); err != nil {
		return fmt.Errorf("record %s score: %w", kind.Label(), err)
	}
	return nil
}

// Reset drops everything, as on logout. Pending tokens become stale.
func (s *Session) Reset() {
	s.token++
	s.topic = ""
	s.state = Idle
	s.err = nil
	s.story, s.math, s.reading = nil, nil, nil
}

func (s *Session) Token() uint64               { return s.token }
func (s *Session) Topic() string               { return s.topic }
func (s *Session) State() LoadingState         { return s.state }
func (s *Session) Err() error                  { return s.err }
func (s *Session) Loading() bool               { return s.state == Loading }
func (s *Session) Story() *storygen.Story      { return s.story }
func (s *Session) Math() *challenge.Math       { return s.math }
func (s *Session) Reading() *challenge.Reading { return s.reading }
