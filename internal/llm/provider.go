// Package llm talks to hosted language models. Every vendor adapter
// satisfies Provider and returns JSON already checked against the
// request's schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a single structured response for a request.
type Provider interface {
	// Generate sends the request and returns the model output. When
	// req.Schema is set, Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name is the provider key ("gemini", "openai", ...).
	Name() string

	// ModelID is the model the provider is configured to call.
	ModelID() string
}

// Request is a provider-neutral generation request.
type Request struct {
	// System is an optional system instruction.
	System string

	// Messages holds the conversation. Story generation sends a single
	// user message.
	Messages []Message

	// Schema, when set, switches the provider to structured JSON output.
	Schema *Schema

	// MaxTokens caps the response length. Zero leaves the vendor default.
	MaxTokens int

	// Temperature in [0, 2]. Zero means "not set".
	Temperature float64
}

// UserPrompt is a shorthand for a single-turn request body.
func UserPrompt(text string) []Message {
	return []Message{{Role: RoleUser, Content: text}}
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is a kebab-case identifier, also used as the cache key for the
	// compiled validator.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is what a provider hands back.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is one of "end", "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
