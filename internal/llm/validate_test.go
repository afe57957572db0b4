package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func quizSchema() *Schema {
	return &Schema{
		Name: "test-quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
				"correct_option_index": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
			},
			"required": []any{"question", "options", "correct_option_index"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		mention string
	}{
		{"valid", `{"question":"Hvem?","options":["a","b","c","d"],"correct_option_index":2}`, false, ""},
		{"missing required", `{"question":"Hvem?","options":["a","b","c","d"]}`, true, "correct_option_index"},
		{"wrong type", `{"question":"Hvem?","options":["a","b","c","d"],"correct_option_index":"2"}`, true, "/correct_option_index"},
		{"three options", `{"question":"Hvem?","options":["a","b","c"],"correct_option_index":1}`, true, "/options"},
		{"index out of range", `{"question":"Hvem?","options":["a","b","c","d"],"correct_option_index":4}`, true, "/correct_option_index"},
		{"malformed", `{not json}`, true, "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(quizSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q does not mention %q", err, tt.mention)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestCheckContent_Empty(t *testing.T) {
	for _, raw := range []string{"", "  \n"} {
		err := checkContent(Request{}, json.RawMessage(raw))
		if !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("checkContent(%q) = %v, want ErrEmptyResponse", raw, err)
		}
	}
}

func TestCompileSchema_Cached(t *testing.T) {
	s := quizSchema()
	s.Name = "test-quiz-cache"
	a, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile again: %v", err)
	}
	if a != b {
		t.Error("second compile did not hit the cache")
	}
}
