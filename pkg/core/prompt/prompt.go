// Package prompt provides a small prompt library for the mentor features.
// Prompts are defined in JSON files under resources/prompts and loaded at
// startup, so pedagogical wording can change without a rebuild. When the
// library is missing the mentor falls back to built-in prompts.
package prompt

// Template is a reusable prompt with metadata.
type Template struct {
	ID             string     `json:"id"`                   // Unique identifier (e.g. "mentor.indicator")
	Name           string     `json:"name"`                 // Human-readable name
	Category       string     `json:"category"`             // Category (mentor, ...)
	Description    string     `json:"description"`          // Purpose of the prompt
	SystemPrompt   string     `json:"system_prompt"`        // System prompt content
	UserPromptTmpl string     `json:"user_prompt_template"` // Go template for the user prompt
	Variables      []Variable `json:"variables"`            // Variables used in the template
	Version        string     `json:"version"`              // Version for tracking changes
}

// Variable documents one template variable.
type Variable struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}
