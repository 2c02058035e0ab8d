package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM backend.
type Config struct {
	// Provider picks the backend: "anthropic", "openai", "gemini",
	// "openrouter", or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig configures the Anthropic backend.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI backend. BaseURL is optional and
// retargets the client at any OpenAI-compatible API.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Google Gemini backend.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig configures the OpenRouter backend.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig tunes the retry middleware.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks Anthropic with the cheap models everywhere, three
// attempts with exponential backoff, and a 30s request budget.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers ALP_* environment variables over the defaults.
// Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Provider, "ALP_LLM_PROVIDER")

	setFromEnv(&cfg.Anthropic.APIKey, "ALP_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "ALP_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "ALP_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "ALP_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "ALP_OPENAI_BASE_URL")

	setFromEnv(&cfg.Gemini.APIKey, "ALP_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "ALP_GEMINI_MODEL")

	setFromEnv(&cfg.OpenRouter.APIKey, "ALP_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "ALP_OPENROUTER_MODEL")

	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// resolveModel translates a friendly model name ("claude-haiku") through
// the provider's table. Names not in the table pass through, so full
// model IDs keep working.
func resolveModel(name string, table map[string]string) string {
	if id, ok := table[name]; ok {
		return id
	}
	return name
}

// DiscoverConfig probes the standard key variables each vendor's tooling
// already uses, in priority order, and returns a Config for the first hit.
// The second return is false when no key is set anywhere.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		env      string
		provider string
		apiKey   *string
	}{
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}

	for _, probe := range probes {
		if key := os.Getenv(probe.env); key != "" {
			cfg.Provider = probe.provider
			*probe.apiKey = key
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate confirms the selected provider has the key it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ALP_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("ALP_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("ALP_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("ALP_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// Needs nothing.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
