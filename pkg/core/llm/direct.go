package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DirectGemini is a long-lived Gemini client for the mentor's interactive
// explanations. Unlike GeminiProvider it keeps one client open for the
// process lifetime instead of dialing per request.
type DirectGemini struct {
	client    *genai.Client
	modelName string
}

var _ Provider = (*DirectGemini)(nil)

// NewDirectGemini connects to the Gemini API. It fails when GEMINI_API_KEY
// is unset; callers fall back to the configured provider manager.
func NewDirectGemini(ctx context.Context, modelName string) (*DirectGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &DirectGemini{client: client, modelName: modelName}, nil
}

// GenerateResponse implements Provider, so the manager can offer the
// persistent client alongside the per-request providers. A "model" option
// overrides the default model for this request only.
func (g *DirectGemini) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	modelName := g.modelName
	if m, ok := options["model"].(string); ok && m != "" {
		modelName = m
	}
	return g.generate(ctx, modelName, systemPrompt, prompt)
}

// AdaptInstructions implements Provider. Gemini takes instructions verbatim.
func (g *DirectGemini) AdaptInstructions(rawInstructions string) string {
	return rawInstructions
}

// Generate produces a single completion for the given prompts.
func (g *DirectGemini) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	return g.generate(ctx, g.modelName, systemPrompt, prompt)
}

func (g *DirectGemini) generate(ctx context.Context, modelName, systemPrompt, prompt string) (string, error) {
	model := g.client.GenerativeModel(modelName)
	model.SetTemperature(0.4)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}

// Close releases the underlying client.
func (g *DirectGemini) Close() error {
	return g.client.Close()
}
