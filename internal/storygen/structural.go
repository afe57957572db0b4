package storygen

import (
	"fmt"
	"math"
	"strings"
)

// StructuralValidator rejects blank text fields and non-finite answers.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(s *Story) *ValidationError {
	fields := []struct {
		name  string
		value string
	}{
		{"title", s.Title},
		{"story_text", s.StoryText},
		{"real_world_fact", s.RealWorldFact},
		{"math_problem.question", s.MathProblem.Question},
		{"reading_question.question", s.ReadingQuestion.Question},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Validator: v.Name(), Message: f.name + " is empty"}
		}
	}
	if math.IsNaN(s.MathProblem.Answer) || math.IsInf(s.MathProblem.Answer, 0) {
		return &ValidationError{Validator: v.Name(), Message: "math_problem.answer is not a finite number"}
	}
	return nil
}

// ReadingValidator requires exactly four distinct, non-blank options and
// a correct index pointing at one of them.
type ReadingValidator struct{}

func (v *ReadingValidator) Name() string { return "reading" }

func (v *ReadingValidator) Validate(s *Story) *ValidationError {
	rq := s.ReadingQuestion
	if len(rq.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", OptionCount, len(rq.Options)),
		}
	}
	seen := make(map[string]int, len(rq.Options))
	for i, o := range rq.Options {
		key := strings.ToLower(strings.TrimSpace(o))
		if key == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("option %d is empty", i)}
		}
		if j, dup := seen[key]; dup {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("options %d and %d are identical", j, i)}
		}
		seen[key] = i
	}
	if rq.CorrectOptionIndex < 0 || rq.CorrectOptionIndex >= len(rq.Options) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct_option_index %d out of range", rq.CorrectOptionIndex),
		}
	}
	return nil
}
