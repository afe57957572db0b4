package storygen

import (
	"encoding/json"
	"testing"
)

func sampleStory() *Story {
	return &Story{
		Title:         "Signalet fra tårnet",
		StoryText:     "Maja stod ved vinduet.\nRegnen faldt over Brøndby, og hun talte trappetrinene.",
		RealWorldFact: "Rundetårn i København har en snegang i stedet for trapper.",
		MathProblem: MathProblem{
			Question: "Snegangen er 209 meter lang. Maja går 5/8 af den. Hvor langt går hun?",
			Answer:   130.625,
			Unit:     "meter",
		},
		ReadingQuestion: ReadingQuestion{
			Question:           "Hvad talte Maja?",
			Options:            []string{"Biler", "Trappetrin", "Regndråber", "Mågerne"},
			CorrectOptionIndex: 1,
		},
	}
}

func storyJSON(t *testing.T, modify func(m map[string]any)) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(sampleStory())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if modify == nil {
		return b
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	modify(m)
	b, err = json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal modified: %v", err)
	}
	return b
}
