package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/mathstory/mathstory/internal/store"
)

func TestMockProvider_FIFOAndCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Err: &ErrRateLimit{}},
	)

	resp, err := mock.Generate(context.Background(), Request{Messages: UserPrompt("first")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"a":1}` || resp.Usage.InputTokens != 10 {
		t.Fatalf("first response = %s %+v", resp.Content, resp.Usage)
	}

	_, err = mock.Generate(context.Background(), Request{Messages: UserPrompt("second")})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("empty queue: expected ErrProviderUnavailable, got %v", err)
	}

	if mock.CallCount() != 3 {
		t.Fatalf("CallCount = %d, want 3", mock.CallCount())
	}
	if mock.Calls[1].Messages[0].Content != "second" {
		t.Errorf("recorded %q, want second", mock.Calls[1].Messages[0].Content)
	}
}

func TestMockProvider_Validate(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"question":"x"}`)})
	mock.Validate = true

	_, err := mock.Generate(context.Background(), Request{Schema: quizSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"title":"Natten"}`), Usage: Usage{InputTokens: 12, OutputTokens: 34}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, st.Events(), logger)
	ctx := WithPurpose(context.Background(), "story")

	if _, err := p.Generate(ctx, Request{Messages: UserPrompt("Skriv en historie")}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.Generate(ctx, Request{Messages: UserPrompt("igen")}); err == nil {
		t.Fatal("second call should fail")
	}

	events, err := st.Events().QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	failed, ok := events[0], events[1]
	if failed.Success || failed.ErrorMessage != "boom" {
		t.Errorf("failed event = %+v", failed)
	}
	if !ok.Success || ok.Purpose != "story" || ok.Provider != ProviderMock || ok.InputTokens != 12 || ok.ResponseBody != `{"title":"Natten"}` {
		t.Errorf("ok event = %+v", ok)
	}
	if !strings.Contains(ok.RequestBody, "Skriv en historie") {
		t.Errorf("request body = %q", ok.RequestBody)
	}

	out := logs.String()
	if !strings.Contains(out, `"msg":"llm request"`) || !strings.Contains(out, `"msg":"llm request failed"`) {
		t.Errorf("log output missing records:\n%s", out)
	}
}

func TestUnavailableProvider(t *testing.T) {
	p := Unavailable(ProviderGemini, errors.New("GEMINI_API_KEY is required"))
	_, err := p.Generate(context.Background(), Request{})

	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("error %q should carry the reason", err)
	}
	if p.Name() != ProviderGemini {
		t.Errorf("Name = %q", p.Name())
	}
}

func TestSerializeRequest(t *testing.T) {
	got := serializeRequest(Request{
		System:   "sys",
		Messages: UserPrompt("hej"),
		Schema:   &Schema{Name: "s", Definition: map[string]any{"type": "object"}},
	})
	for _, want := range []string{"[system]\nsys", "[user]\nhej", "[schema: s]", `{"type":"object"}`} {
		if !strings.Contains(got, want) {
			t.Errorf("serialized request missing %q:\n%s", want, got)
		}
	}
}

func TestPurpose(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q", got)
	}
	if got := PurposeFrom(WithPurpose(context.Background(), "story")); got != "story" {
		t.Errorf("purpose = %q", got)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-3-flash-preview")
	if c == nil {
		t.Fatal("default model missing from pricing table")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 3.5 {
		t.Errorf("cost = %v, want 3.5", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("unknown model should have no price")
	}
}
