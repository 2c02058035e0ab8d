package llm

import "testing"

func TestOpenRouterRequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
		t.Fatal("expected an error for a missing API key")
	}
}

func TestOpenRouterModelPassThrough(t *testing.T) {
	// OpenRouter model IDs carry the vendor prefix and never go through
	// a friendly-name table.
	cases := []string{
		"google/gemini-2.0-flash-exp",
		"anthropic/claude-3-haiku",
		"meta-llama/llama-3-8b",
	}
	for _, model := range cases {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider(%q) error: %v", model, err)
		}
		if p.ModelID() != model {
			t.Errorf("ModelID() = %q, want %q", p.ModelID(), model)
		}
	}
}

func TestOpenRouterBaseURL(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b"})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider() error: %v", err)
		}
		if p == nil {
			t.Fatal("expected a provider")
		}
	})

	t.Run("override", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: "https://proxy.internal.example/v1",
		})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider() error: %v", err)
		}
		if p == nil {
			t.Fatal("expected a provider")
		}
	})
}
