// Package config holds the taskpal configuration: model providers, the task
// snapshot location, and the assistant persona.
package config

import "time"

// Config is the root configuration for taskpal.
type Config struct {
	Models ModelsConfig `json:"models"`
	Tasks  TasksConfig  `json:"tasks"`
	Agent  AgentConfig  `json:"agent"`
}

// TasksConfig locates the task snapshot file.
type TasksConfig struct {
	File string `json:"file"`
}

// ModelsConfig holds model provider configuration.
type ModelsConfig struct {
	Default   string                    `json:"default"`
	Providers map[string]ProviderConfig `json:"providers"`
}

// ProviderConfig configures a single LLM provider.
type ProviderConfig struct {
	Driver    string         `json:"driver"` // "openai", "anthropic", "ollama"
	Model     string         `json:"model"`
	BaseURL   string         `json:"base_url,omitempty"`
	Auth      AuthConfig     `json:"auth"`
	MaxTokens int            `json:"max_tokens,omitempty"`
	Timeout   Duration       `json:"timeout,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
}

// AuthConfig configures API key resolution.
type AuthConfig struct {
	APIKey string `json:"api_key,omitempty"` // direct key or ${ENV_VAR} indirection
}

// AgentConfig holds assistant settings.
type AgentConfig struct {
	SystemPrompt string `json:"system_prompt,omitempty"`
}

// DefaultProvider returns the configured default provider, falling back to
// the first (only) provider when no default is named.
func (c *Config) DefaultProvider() (string, ProviderConfig) {
	if p, ok := c.Models.Providers[c.Models.Default]; ok {
		return c.Models.Default, p
	}
	for name, p := range c.Models.Providers {
		return name, p
	}
	return "", ProviderConfig{}
}

// Duration wraps time.Duration for JSON unmarshaling.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}
