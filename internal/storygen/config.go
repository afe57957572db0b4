package storygen

// Purpose labels story requests in the LLM request log.
const Purpose = "story"

// Config controls the LLMGenerator.
type Config struct {
	// Validators run in order after decoding; the first failure wins.
	Validators []Validator

	// MaxTokens is the response budget. Zero leaves the provider default.
	MaxTokens int

	// Temperature is kept high for varied stories.
	Temperature float64

	// Purpose overrides the request-log label.
	Purpose string
}

func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ReadingValidator{},
		},
		MaxTokens:   8192,
		Temperature: 0.9,
		Purpose:     Purpose,
	}
}
