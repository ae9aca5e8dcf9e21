// Package agent selects and drives the configured LLM provider for the
// mentor features. Providers are chosen per agent type through
// config/models.yaml, with a global active provider as the default.
package agent

import (
	"context"
	"fmt"
	"sort"

	"adm_academy/pkg/core/llm"
)

type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

type AgentConfig struct {
	Provider    string `yaml:"provider"` // Optional override
	Model       string `yaml:"model"`    // Optional model override
	Description string `yaml:"description"`
}

type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":   &llm.GeminiProvider{},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

// GetProvider resolves the provider for an agent type: per-agent override
// first, then the global active provider, then Gemini.
func (m *Manager) GetProvider(agentType string) llm.Provider {
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p
		}
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}

// ExecutePrompt adapts the system prompt for the resolved provider and runs
// the request. The context carries the caller's cancellation: a learner
// navigating away abandons the request, and its late result is discarded
// upstream.
func (m *Manager) ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(agentType)
	adaptedSystemPrompt := provider.AdaptInstructions(rawSystemPrompt)

	if options == nil {
		options = map[string]interface{}{}
	}
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Model != "" {
		if _, set := options["model"]; !set {
			options["model"] = agentConfig.Model
		}
	}

	return provider.GenerateResponse(ctx, rawPrompt, adaptedSystemPrompt, options)
}

// RegisterProvider adds or replaces a named provider.
func (m *Manager) RegisterProvider(name string, p llm.Provider) {
	m.providers[name] = p
}

// SetGlobalProvider switches the default provider at runtime.
func (m *Manager) SetGlobalProvider(newProvider string) error {
	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	return nil
}

// GetActiveProvider returns the current global provider name.
func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}

// AvailableProviders lists the registered provider names.
func (m *Manager) AvailableProviders() []string {
	out := make([]string, 0, len(m.providers))
	for name := range m.providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
