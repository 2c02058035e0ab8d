package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicAgainst builds a provider whose client talks to a local stub
// instead of the real API.
func anthropicAgainst(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		// The SDK retries 429s and 5xxs on its own; the error-mapping
		// tests want the first response back unchanged.
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-20250514"}
}

func anthropicMessageBody(text string) map[string]any {
	return map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": "end_turn",
		"usage": map[string]any{
			"input_tokens":  50,
			"output_tokens": 30,
		},
	}
}

func anthropicErrorBody(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": kind, "message": "nope"},
		})
	}
}

func TestAnthropicGenerate(t *testing.T) {
	narration := `{"headline":"Expressions first, then linear equations"}`
	p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageBody(narration))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a study coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Narrate this path."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(resp.Content) != narration {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.OutputTokens != 30 {
		t.Errorf("usage = %d/%d, want 50/30", resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicRateLimitMapped(t *testing.T) {
	p := anthropicAgainst(t, anthropicErrorBody(http.StatusTooManyRequests, "rate_limit_error"))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "x"}},
		MaxTokens: 100,
	})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("error = %v (%T), want *ErrRateLimit", err, err)
	}
}

func TestAnthropicServerErrorMapped(t *testing.T) {
	p := anthropicAgainst(t, anthropicErrorBody(http.StatusInternalServerError, "api_error"))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "x"}},
		MaxTokens: 100,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v (%T), want *ErrProviderUnavailable", err, err)
	}
}

func TestAnthropicRequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected an error for a missing API key")
	}
}

func TestAnthropicFriendlyNames(t *testing.T) {
	cases := []struct{ in, want string }{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tc := range cases {
		if got := resolveModel(tc.in, anthropicModels); got != tc.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
