// Package storygen asks a language model for a Danish story with a math
// problem and a reading-comprehension question woven into it.
package storygen

import (
	"context"
	"strings"
)

// Story is one generated story instance, as returned by the model.
type Story struct {
	Title           string          `json:"title"`
	StoryText       string          `json:"story_text"`
	RealWorldFact   string          `json:"real_world_fact"`
	MathProblem     MathProblem     `json:"math_problem"`
	ReadingQuestion ReadingQuestion `json:"reading_question"`
}

type MathProblem struct {
	Question string  `json:"question"`
	Answer   float64 `json:"answer"`
	// Unit is optional, e.g. "meter", "kroner", "år".
	Unit string `json:"unit,omitempty"`
}

type ReadingQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

// WordCount counts whitespace-separated words in the story text.
func (s *Story) WordCount() int {
	return len(strings.Fields(s.StoryText))
}

// Generator produces stories.
type Generator interface {
	// Generate returns a validated story for topic. A blank topic uses
	// DefaultTopic.
	Generate(ctx context.Context, topic string) (*Story, error)
}
