package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	cfg := DefaultConfig().OpenRouter
	cfg.APIKey = "sk-or-test"

	p, err := NewOpenRouterProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != ProviderOpenRouter {
		t.Errorf("name = %q", p.Name())
	}
	if p.ModelID() != "google/gemini-2.5-flash" {
		t.Errorf("model = %q", p.ModelID())
	}

	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
