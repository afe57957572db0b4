package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-3-flash-preview"},
		{"gemini-pro", "gemini-3-pro-preview"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(quizSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 || len(schema.Required) != 3 {
		t.Fatalf("properties/required = %d/%d", len(schema.Properties), len(schema.Required))
	}
	opts := schema.Properties["options"]
	if opts.Type != genai.TypeArray || opts.Items.Type != genai.TypeString {
		t.Fatalf("options = %s of %s", opts.Type, opts.Items.Type)
	}
	if opts.MinItems == nil || *opts.MinItems != 4 || opts.MaxItems == nil || *opts.MaxItems != 4 {
		t.Errorf("options item bounds not carried over")
	}
	idx := schema.Properties["correct_option_index"]
	if idx.Type != genai.TypeInteger || idx.Maximum == nil || *idx.Maximum != 3 {
		t.Errorf("index schema = %+v", idx)
	}
}

func newTestGeminiProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-flash",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func geminiReply(text, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": finish,
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount":     120,
				"candidatesTokenCount": 800,
				"totalTokenCount":      920,
			},
		})
	}
}

func TestGeminiProvider_HappyPath(t *testing.T) {
	p := newTestGeminiProvider(t, geminiReply(`{"question":"Hvem?","options":["a","b","c","d"],"correct_option_index":1}`, "STOP"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:    UserPrompt("Skriv en historie"),
		Schema:      quizSchema(),
		Temperature: 0.9,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 120 || resp.Usage.OutputTokens != 800 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.Model != "gemini-3-flash-preview" || resp.StopReason != "end" {
		t.Errorf("model/stop = %q/%q", resp.Model, resp.StopReason)
	}
}

func TestGeminiProvider_SchemaViolation(t *testing.T) {
	p := newTestGeminiProvider(t, geminiReply(`{"question":"Hvem?","options":["a"],"correct_option_index":1}`, "STOP"))

	_, err := p.Generate(context.Background(), Request{Messages: UserPrompt("x"), Schema: quizSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestGeminiProvider_EmptyText(t *testing.T) {
	p := newTestGeminiProvider(t, geminiReply("", "STOP"))

	_, err := p.Generate(context.Background(), Request{Messages: UserPrompt("x"), Schema: quizSchema()})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	if err := mapGeminiError(&genai.APIError{Code: http.StatusTooManyRequests}); !errors.As(err, &rl) {
		t.Errorf("429 mapped to %T", err)
	}
	var unavail *ErrProviderUnavailable
	if err := mapGeminiError(&genai.APIError{Code: http.StatusServiceUnavailable}); !errors.As(err, &unavail) {
		t.Errorf("503 mapped to %T", err)
	}
	if err := mapGeminiError(errors.New("dial tcp: refused")); !errors.As(err, &unavail) {
		t.Errorf("network error mapped to %T", err)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
