package llm

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Provider keys accepted by Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds provider selection and per-vendor settings. All fields are
// read from the environment; see the env tags for names and defaults.
type Config struct {
	// Provider picks the vendor. Empty means "discover from API keys".
	Provider string `env:"MATHSTORY_LLM_PROVIDER"`

	// Model overrides the selected provider's model.
	Model string `env:"MATHSTORY_LLM_MODEL"`

	// Timeout bounds one generation including retries.
	Timeout time.Duration `env:"MATHSTORY_LLM_TIMEOUT" envDefault:"60s"`

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	// LegacyAPIKey is the plain API_KEY variable older setups export.
	LegacyAPIKey string `env:"API_KEY"`
	Model        string `env:"MATHSTORY_GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
	BaseURL      string `env:"MATHSTORY_GEMINI_BASE_URL"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"MATHSTORY_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"MATHSTORY_OPENAI_BASE_URL"`
}

type AnthropicConfig struct {
	APIKey string `env:"ANTHROPIC_API_KEY"`
	Model  string `env:"MATHSTORY_ANTHROPIC_MODEL" envDefault:"claude-haiku"`
}

type OpenRouterConfig struct {
	APIKey  string `env:"OPENROUTER_API_KEY"`
	Model   string `env:"MATHSTORY_OPENROUTER_MODEL" envDefault:"google/gemini-2.5-flash"`
	BaseURL string `env:"MATHSTORY_OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
}

// RetryConfig drives the retry decorator. MaxAttempts of 1 disables
// retrying: a failed story request is resubmitted by the user.
type RetryConfig struct {
	MaxAttempts int           `env:"MATHSTORY_LLM_MAX_ATTEMPTS" envDefault:"1"`
	InitialWait time.Duration `env:"MATHSTORY_LLM_RETRY_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"MATHSTORY_LLM_RETRY_MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"MATHSTORY_LLM_RETRY_MULTIPLIER" envDefault:"2"`
}

// DefaultConfig returns the tag defaults with nothing read from the
// process environment.
func DefaultConfig() Config {
	cfg, err := loadConfig(map[string]string{})
	if err != nil {
		panic(fmt.Sprintf("llm: invalid config defaults: %v", err))
	}
	return cfg
}

// ConfigFromEnv reads the configuration from the process environment.
func ConfigFromEnv() (Config, error) {
	return loadConfig(nil)
}

// loadConfig parses environ (the process environment when nil), applies
// the API_KEY fallback and resolves the provider.
func loadConfig(environ map[string]string) (Config, error) {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse llm config: %w", err)
	}

	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = cfg.Gemini.LegacyAPIKey
	}
	if cfg.Provider == "" {
		cfg.Provider = cfg.discoverProvider()
	}
	if cfg.Model != "" {
		cfg.applyModel(cfg.Model)
	}
	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry.MaxAttempts = 1
	}
	return cfg, nil
}

// discoverProvider returns the first provider with a key, probing Gemini,
// OpenAI, Anthropic and OpenRouter in that order. Gemini is the fallback
// so a missing key surfaces as a Gemini configuration error.
func (c Config) discoverProvider() string {
	switch {
	case c.Gemini.APIKey != "":
		return ProviderGemini
	case c.OpenAI.APIKey != "":
		return ProviderOpenAI
	case c.Anthropic.APIKey != "":
		return ProviderAnthropic
	case c.OpenRouter.APIKey != "":
		return ProviderOpenRouter
	}
	return ProviderGemini
}

func (c *Config) applyModel(model string) {
	switch c.Provider {
	case ProviderGemini:
		c.Gemini.Model = model
	case ProviderOpenAI:
		c.OpenAI.Model = model
	case ProviderAnthropic:
		c.Anthropic.Model = model
	case ProviderOpenRouter:
		c.OpenRouter.Model = model
	}
}

// Validate reports a missing credential for the selected provider.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY (or API_KEY) is required for the gemini provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
