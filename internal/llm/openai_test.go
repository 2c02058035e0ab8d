package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// openaiAgainst builds a provider whose client talks to a local stub.
func openaiAgainst(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func openaiErrorBody(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": kind, "message": "nope"},
		})
	}
}

func TestOpenAIGenerate(t *testing.T) {
	narration := `{"headline":"Expressions first, then linear equations"}`
	p := openaiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": narration},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
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
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("usage = %d/%d, want 40/25", resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestOpenAIRateLimitMapped(t *testing.T) {
	p := openaiAgainst(t, openaiErrorBody(http.StatusTooManyRequests, "tokens"))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "x"}},
		MaxTokens: 100,
	})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("error = %v (%T), want *ErrRateLimit", err, err)
	}
}

func TestOpenAIServerErrorMapped(t *testing.T) {
	p := openaiAgainst(t, openaiErrorBody(http.StatusInternalServerError, "server_error"))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "x"}},
		MaxTokens: 100,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v (%T), want *ErrProviderUnavailable", err, err)
	}
}

func TestOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o-mini"}); err == nil {
		t.Fatal("expected an error for a missing API key")
	}
}

func TestOpenAIBaseURLOverride(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Errorf("ModelID() = %q, want gpt-4o", p.ModelID())
	}
}
