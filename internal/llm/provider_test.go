package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"headline":"Expressions first"}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
		MockResponse{Content: json.RawMessage(`{"headline":"Then linear equations"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "narrate step one"}},
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(first.Content) != `{"headline":"Expressions first"}` {
		t.Errorf("first content = %s", first.Content)
	}
	if first.Usage.InputTokens != 10 {
		t.Errorf("input tokens = %d, want 10", first.Usage.InputTokens)
	}
	if first.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "narrate step two"}},
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(second.Content) != `{"headline":"Then linear equations"}` {
		t.Errorf("second content = %s", second.Content)
	}
}

func TestMockProviderExhaustedScript(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected an error once the script runs out")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error type = %T, want *ErrProviderUnavailable", err)
	}
}

func TestMockProviderKeepsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "You are a study coach.",
		Messages: []Message{{Role: RoleUser, Content: "introduce fractions"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}
	if got := mock.Calls[0].System; got != "You are a study coach." {
		t.Errorf("recorded system prompt = %q", got)
	}
}

func TestMockProviderScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("error = %v, want *ErrRateLimit", err)
	}
}

func TestMockProviderModelID(t *testing.T) {
	if id := NewMockProvider().ModelID(); id != "mock" {
		t.Fatalf("ModelID() = %q, want mock", id)
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("untagged purpose = %q, want unknown", p)
	}

	ctx = WithPurpose(ctx, "narrate-path")
	if p := PurposeFrom(ctx); p != "narrate-path" {
		t.Fatalf("purpose = %q, want narrate-path", p)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cloudbrain"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigFromEnvLayering(t *testing.T) {
	t.Setenv("ALP_LLM_PROVIDER", "openai")
	t.Setenv("ALP_OPENAI_API_KEY", "sk-env")
	t.Setenv("ALP_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("APIKey = %q, want sk-env", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("untouched default changed: anthropic model = %q", cfg.Anthropic.Model)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with no keys set")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("got (%q, %v), want gemini", cfg.Provider, ok)
	}

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("got (%q, %v), want anthropic to outrank gemini", cfg.Provider, ok)
	}
}
