// Package llm abstracts the hosted language models behind the tutor's
// two optional AI capabilities: the difficulty predictor and the
// free-text expression solver. Both are single-turn, schema-constrained
// calls; everything here is built around that shape.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for model interaction.
type Provider interface {
	// Generate sends a single-turn prompt and returns the response.
	// When the request carries a Schema the provider uses its native
	// structured output mechanism and the returned Content is JSON
	// validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. All callers in this codebase are
	// single-turn; there is no conversation history.
	Prompt string

	// Schema, when set, constrains the response to JSON conforming to
	// the definition.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness (0.0-1.0). Zero when unset.
	Temperature float64
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "difficulty-multiplier".
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output; validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
