package storygen

import (
	"math"
	"testing"
)

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *Story)
		wantErr bool
	}{
		{"valid", func(*Story) {}, false},
		{"empty title", func(s *Story) { s.Title = "" }, true},
		{"blank story", func(s *Story) { s.StoryText = " \n " }, true},
		{"empty fact", func(s *Story) { s.RealWorldFact = "" }, true},
		{"empty math question", func(s *Story) { s.MathProblem.Question = "" }, true},
		{"empty reading question", func(s *Story) { s.ReadingQuestion.Question = "" }, true},
		{"NaN answer", func(s *Story) { s.MathProblem.Answer = math.NaN() }, true},
		{"zero answer is fine", func(s *Story) { s.MathProblem.Answer = 0 }, false},
	}
	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleStory()
			tt.modify(s)
			if err := v.Validate(s); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadingValidator(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(rq *ReadingQuestion)
		wantErr bool
	}{
		{"valid", func(*ReadingQuestion) {}, false},
		{"three options", func(rq *ReadingQuestion) { rq.Options = rq.Options[:3] }, true},
		{"blank option", func(rq *ReadingQuestion) { rq.Options[2] = " " }, true},
		{"duplicate option", func(rq *ReadingQuestion) { rq.Options[3] = "biler" }, true},
		{"index too big", func(rq *ReadingQuestion) { rq.CorrectOptionIndex = 4 }, true},
		{"negative index", func(rq *ReadingQuestion) { rq.CorrectOptionIndex = -1 }, true},
		{"last index", func(rq *ReadingQuestion) { rq.CorrectOptionIndex = 3 }, false},
	}
	v := &ReadingValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleStory()
			tt.modify(&s.ReadingQuestion)
			if err := v.Validate(s); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	if got := sampleStory().WordCount(); got != 12 {
		t.Errorf("WordCount() = %d, want 12", got)
	}
}
