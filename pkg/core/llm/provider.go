package llm

import (
	"context"
)

// Provider is the interface for all LLM providers. Implementations are
// stateless and safe for concurrent use; each request is self-contained.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// Message is one turn of an OpenAI-compatible chat request.
type Message struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}
