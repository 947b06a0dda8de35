package config

import "time"

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type LLM struct {
	Provider string `json:"provider" yaml:"provider"`
	APIKey   string `json:"api_key" yaml:"api_key"`
	// BaseURL is only used by OpenAI compatible endpoints.
	BaseURL string        `json:"base_url" yaml:"base_url"`
	Model   string        `json:"model" yaml:"model"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

func (l *LLM) applyDefaults() {
	if l.Provider == "" {
		l.Provider = ProviderGemini
	}
	if l.Model == "" {
		switch l.Provider {
		case ProviderOpenAI:
			l.Model = "gpt-4o-mini"
		default:
			l.Model = "gemini-2.5-flash"
		}
	}
	if l.Timeout == 0 {
		l.Timeout = 30 * time.Second
	}
}
