package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/mathstory/mathstory/internal/storygen"
)

func quizStory() *storygen.Story {
	return &storygen.Story{
		Title:         "Fyrets hemmelighed",
		StoryText:     "Ida fandt et kort.\nHun gik 42,5 meter mod fyret.",
		RealWorldFact: "Danmarks ældste fyr blev tændt i 1560.",
		MathProblem:   storygen.MathProblem{Question: "Hvor langt gik Ida?", Answer: 42.5, Unit: "meter"},
		ReadingQuestion: storygen.ReadingQuestion{
			Question:           "Hvad fandt Ida?",
			Options:            []string{"En sko", "Et kort", "En nøgle", "En bog"},
			CorrectOptionIndex: 1,
		},
	}
}

func TestOptionIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"a", 0, true},
		{"B", 1, true},
		{"4", 3, true},
		{"E", 0, false},
		{"0", 0, false},
	}
	for _, tt := range tests {
		got, ok := optionIndex(tt.in, 4)
		if got != tt.want || ok != tt.ok {
			t.Errorf("optionIndex(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatAnswer(t *testing.T) {
	for in, want := range map[float64]string{42.5: "42.5", 3: "3", 0.25: "0.25"} {
		if got := formatAnswer(in); got != want {
			t.Errorf("formatAnswer(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRunQuiz(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewScanner(strings.NewReader("x\na\nb\n40\n42,5\n"))

	if err := runQuiz(&out, in, quizStory()); err != nil {
		t.Fatalf("runQuiz: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Vælg et bogstav",
		"Korrekt! +10 point",
		"Husk at bruge punktum eller komma",
		"Helt rigtigt! +10 point",
		"Svaret var 42.5 meter",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunQuizSkip(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewScanner(strings.NewReader("\n\n"))

	if err := runQuiz(&out, in, quizStory()); err != nil {
		t.Fatalf("runQuiz: %v", err)
	}
	if n := strings.Count(out.String(), "(sprunget over)"); n != 2 {
		t.Errorf("skipped %d challenges, want 2", n)
	}
}

func TestPrintStory(t *testing.T) {
	var out bytes.Buffer
	printStory(&out, quizStory())

	got := out.String()
	if !strings.HasPrefix(got, "── Fyrets hemmelighed ──") {
		t.Errorf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "Virkelighedens Verden: Danmarks ældste fyr") {
		t.Errorf("missing fact:\n%s", got)
	}
}
