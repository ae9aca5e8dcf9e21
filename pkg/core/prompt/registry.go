package prompt

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"
)

// Registry holds all loaded prompt templates.
type Registry struct {
	prompts map[string]*Template
	mu      sync.RWMutex
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry singleton.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{
			prompts: make(map[string]*Template),
		}
	})
	return globalRegistry
}

// Register adds a prompt template to the registry.
func (r *Registry) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.prompts[t.ID] = t
	return nil
}

// GetPrompt retrieves a template by ID.
func (r *Registry) GetPrompt(id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.prompts[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("prompt not found: %s", id)
}

// Render resolves a template and executes its user prompt against the given
// variables, returning the system prompt and the rendered user prompt.
func (r *Registry) Render(id string, vars map[string]interface{}) (system string, user string, err error) {
	t, err := r.GetPrompt(id)
	if err != nil {
		return "", "", err
	}

	tmpl, err := template.New(t.ID).Parse(t.UserPromptTmpl)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse prompt template %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", "", fmt.Errorf("failed to render prompt %s: %w", id, err)
	}
	return t.SystemPrompt, buf.String(), nil
}

// Count returns the number of registered prompts.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}

// Clear removes all prompts (useful for testing).
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = make(map[string]*Template)
}
