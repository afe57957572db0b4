package llm

import "fmt"

// NewOpenRouterProvider targets OpenRouter's OpenAI-compatible API. Model
// names are OpenRouter slugs such as "google/gemini-2.5-flash".
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	return newOpenAICompatible(ProviderOpenRouter, cfg.APIKey, cfg.BaseURL, cfg.Model), nil
}
