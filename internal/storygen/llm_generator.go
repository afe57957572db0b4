package storygen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mathstory/mathstory/internal/llm"
)

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

var _ Generator = (*LLMGenerator)(nil)

func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate makes exactly one provider call. Any failure is returned as is
// for the caller to surface; nothing is retried or cached here.
func (g *LLMGenerator) Generate(ctx context.Context, topic string) (*Story, error) {
	purpose := g.config.Purpose
	if purpose == "" {
		purpose = Purpose
	}
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages:    llm.UserPrompt(BuildPrompt(topic)),
		Schema:      StorySchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate story: %w", err)
	}

	var story Story
	if err := json.Unmarshal(resp.Content, &story); err != nil {
		return nil, fmt.Errorf("decode story: %w", &llm.ErrInvalidResponse{Content: resp.Content, Err: err})
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(&story); verr != nil {
			return nil, verr
		}
	}
	return &story, nil
}
