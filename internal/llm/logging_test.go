package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Yashshokeen-11/ALP/internal/store"
)

// captureEventRepo records appended LLM request events in memory.
type captureEventRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	fail   bool
}

func (c *captureEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if c.fail {
		return errors.New("event log unavailable")
	}
	c.events = append(c.events, data)
	return nil
}

func TestLogging_RecordsSuccessfulRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"headline":"ok"}`),
			Usage:   Usage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52},
		},
	)
	repo := &captureEventRepo{}
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "narrate-path")
	req := Request{
		System:   "You are a study coach.",
		Messages: []Message{{Role: RoleUser, Content: "Summarize this plan."}},
	}
	resp, err := p.Generate(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", e.Provider)
	}
	if e.Model != "mock" {
		t.Errorf("model = %q, want mock", e.Model)
	}
	if e.Purpose != "narrate-path" {
		t.Errorf("purpose = %q, want narrate-path", e.Purpose)
	}
	if !e.Success {
		t.Error("expected success=true")
	}
	if e.InputTokens != 40 || e.OutputTokens != 12 {
		t.Errorf("tokens = %d/%d, want 40/12", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != string(resp.Content) {
		t.Errorf("response body = %q, want %q", e.ResponseBody, resp.Content)
	}
	if !strings.Contains(e.RequestBody, "You are a study coach.") {
		t.Errorf("request body missing system prompt: %q", e.RequestBody)
	}
	if !strings.Contains(e.RequestBody, "Summarize this plan.") {
		t.Errorf("request body missing user message: %q", e.RequestBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &captureEventRepo{}
	p := WithLogging(mock, "openai", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected success=false")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", e.Purpose)
	}
}

func TestLogging_LogFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	repo := &captureEventRepo{fail: true}
	p := WithLogging(mock, "anthropic", repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestLogging_SerializesSchema(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"headline":"x","minutes":5}`)},
	)
	repo := &captureEventRepo{}
	p := WithLogging(mock, "anthropic", repo)

	_, err := p.Generate(context.Background(), Request{Schema: pathNoteSchema()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(repo.events[0].RequestBody, "[schema: path-note]") {
		t.Errorf("request body missing schema marker: %q", repo.events[0].RequestBody)
	}
}

func TestLogging_ModelIDDelegates(t *testing.T) {
	p := WithLogging(NewMockProvider(), "mock", &captureEventRepo{})
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
