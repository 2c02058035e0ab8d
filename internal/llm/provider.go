package llm

import (
	"context"
	"encoding/json"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of conversation. ALP prompts are single-turn, so a
// request usually carries exactly one user message.
type Message struct {
	Role    Role
	Content string
}

// Request is a provider-neutral prompt.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Messages is the conversation so far.
	Messages []Message

	// Schema, when set, forces structured output. The response Content is
	// then JSON that has been validated against this schema. A nil Schema
	// means free-form text.
	Schema *Schema

	// MaxTokens caps the length of the generation.
	MaxTokens int

	// Temperature in [0, 1]. Zero asks for deterministic output.
	Temperature float64
}

// Schema names a JSON Schema that generated output must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "study-plan". OpenAI requires
	// it for structured output, and the validator caches by it.
	Name string

	// Description tells the model what the document represents.
	Description string

	// Definition is the schema itself, as a decoded JSON object.
	Definition map[string]any
}

// Response is what came back from the model.
type Response struct {
	// Content holds the generation. With a Schema on the request this is
	// validated JSON; without one it is the raw text.
	Content json.RawMessage

	// Usage is the token accounting for this single request.
	Usage Usage

	// Model is the model that actually answered, which can differ from
	// the one configured when the backend substitutes versions.
	Model string

	// StopReason is one of "end", "max_tokens", "error".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Provider abstracts an LLM backend. Narration and concept explanations go
// through it; path scheduling never touches it, so ALP works fully offline.
type Provider interface {
	// Generate runs one prompt to completion.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}
