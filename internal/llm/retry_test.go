package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetries() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var narrationOK = MockResponse{Content: json.RawMessage(`{"headline":"Two new concepts this week"}`)}

func providerDown() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}}
}

func TestRetryFirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(narrationOK)
	p := WithRetry(mock, fastRetries())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(resp.Content) != string(narrationOK.Content) {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	mock := NewMockProvider(providerDown(), narrationOK)
	p := WithRetry(mock, fastRetries())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(resp.Content) != string(narrationOK.Content) {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(providerDown(), providerDown(), providerDown())
	p := WithRetry(mock, fastRetries())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected the last failure to surface")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryDoesNotRepeatTruncation(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}})
	p := WithRetry(mock, fastRetries())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("error = %v, want *ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryInvalidResponseGetsOneRetry(t *testing.T) {
	badJSON := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("not JSON")}}
	mock := NewMockProvider(badJSON, badJSON, narrationOK)
	p := WithRetry(mock, fastRetries())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected failure after the single invalid-response retry")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (one retry, then stop)", mock.CallCount())
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(providerDown(), providerDown(), narrationOK)
	p := WithRetry(mock, fastRetries())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected an error on a cancelled context")
	}
}

func TestRetryHonorsRetryAfterHint(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		narrationOK,
	)
	p := WithRetry(mock, fastRetries())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(resp.Content) != string(narrationOK.Content) {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetries())
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID() = %q, want mock", p.ModelID())
	}
}
