package llm

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderGemini {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-3-flash-preview" {
		t.Errorf("gemini model = %q", cfg.Gemini.Model)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("max attempts = %d, want 1", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("timeout = %s", cfg.Timeout)
	}
	if cfg.OpenRouter.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("openrouter base URL = %q", cfg.OpenRouter.BaseURL)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("defaults have no key and should not validate")
	}
}

func TestLoadConfig_Discovery(t *testing.T) {
	tests := []struct {
		name     string
		environ  map[string]string
		provider string
	}{
		{"gemini key", map[string]string{"GEMINI_API_KEY": "g"}, ProviderGemini},
		{"legacy API_KEY", map[string]string{"API_KEY": "g"}, ProviderGemini},
		{"openai only", map[string]string{"OPENAI_API_KEY": "o"}, ProviderOpenAI},
		{"anthropic only", map[string]string{"ANTHROPIC_API_KEY": "a"}, ProviderAnthropic},
		{"openrouter only", map[string]string{"OPENROUTER_API_KEY": "r"}, ProviderOpenRouter},
		{"gemini wins", map[string]string{"OPENAI_API_KEY": "o", "GEMINI_API_KEY": "g"}, ProviderGemini},
		{"explicit provider", map[string]string{"GEMINI_API_KEY": "g", "MATHSTORY_LLM_PROVIDER": "mock"}, ProviderMock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(tt.environ)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.Provider != tt.provider {
				t.Errorf("provider = %q, want %q", cfg.Provider, tt.provider)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("validate: %v", err)
			}
		})
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig(map[string]string{
		"OPENAI_API_KEY":             "o",
		"MATHSTORY_LLM_MODEL":        "gpt-4.1-mini",
		"MATHSTORY_LLM_TIMEOUT":      "5s",
		"MATHSTORY_LLM_MAX_ATTEMPTS": "0",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4.1-mini" {
		t.Errorf("model override not applied: %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("attempts below 1 should clamp to 1, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestLoadConfig_BadDuration(t *testing.T) {
	if _, err := loadConfig(map[string]string{"MATHSTORY_LLM_TIMEOUT": "soon"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini ok", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini missing", Config{Provider: ProviderGemini}, true},
		{"openai missing", Config{Provider: ProviderOpenAI}, true},
		{"anthropic missing", Config{Provider: ProviderAnthropic}, true},
		{"openrouter missing", Config{Provider: ProviderOpenRouter}, true},
		{"mock", Config{Provider: ProviderMock}, false},
		{"unknown", Config{Provider: "ollama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
