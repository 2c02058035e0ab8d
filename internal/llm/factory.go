package llm

import (
	"context"
	"fmt"

	"github.com/Yashshokeen-11/ALP/internal/store"
)

// NewProvider builds the configured backend and wraps it in the standard
// middleware chain: caller → retry → event logging → backend. Every
// attempt, including retried ones, lands in the event log.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var backend Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		backend, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		backend, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		backend, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		backend, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(backend, cfg.Provider, eventRepo), cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from ALP_* environment variables,
// falling back to the standard vendor key variables (ANTHROPIC_API_KEY and
// friends) when the explicit configuration is incomplete.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
