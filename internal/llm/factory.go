package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mathstory/mathstory/internal/store"
)

// NewProvider builds the configured vendor adapter and wraps it as
// caller → retry → logging → adapter, so each attempt is logged.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, events, logger), cfg.Retry), nil
}

// NewProviderFromEnv reads Config from the environment and builds the
// provider. The returned Config is valid even when err is not nil, so the
// caller can report which provider was attempted.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, logger *slog.Logger) (Provider, Config, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, cfg, err
	}
	p, err := NewProvider(ctx, cfg, events, logger)
	return p, cfg, err
}
