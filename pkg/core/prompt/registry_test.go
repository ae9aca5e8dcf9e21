package prompt

import (
	"strings"
	"testing"
)

func TestRegisterAndRender(t *testing.T) {
	r := Get()
	r.Clear()

	err := r.Register(&Template{
		ID:             "mentor.test",
		SystemPrompt:   "Você é um mentor.",
		UserPromptTmpl: "Analise a empresa {{.Company}} do setor {{.Sector}}.",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	system, user, err := r.Render("mentor.test", map[string]interface{}{
		"Company": "Ambev",
		"Sector":  "Bebidas",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if system != "Você é um mentor." {
		t.Errorf("Unexpected system prompt: %q", system)
	}
	if !strings.Contains(user, "Ambev") || !strings.Contains(user, "Bebidas") {
		t.Errorf("Expected variables substituted, got %q", user)
	}
}

func TestRenderUnknownID(t *testing.T) {
	r := Get()
	r.Clear()

	if _, _, err := r.Render("mentor.missing", nil); err == nil {
		t.Error("Expected an error for an unknown prompt id")
	}
}

func TestRegisterRequiresID(t *testing.T) {
	if err := Get().Register(&Template{}); err == nil {
		t.Error("Expected an error for an empty prompt id")
	}
}

func TestIDFromPath(t *testing.T) {
	got := idFromPath("prompts/mentor/indicator.json", "prompts")
	if got != "mentor.indicator" {
		t.Errorf("Expected mentor.indicator, got %q", got)
	}
}
