package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrProviderUnavailable wraps transport and server-side failures. The
// retry layer treats it as transient.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unreachable"
	}
	return fmt.Sprintf("LLM provider unreachable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit reports an HTTP 429 from the provider. RetryAfter is zero
// when the provider gave no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("provider rate limit hit, retry after %s: %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports output that failed schema validation. Content
// carries the offending bytes for the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("LLM response failed schema validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a generation cut off by the MaxTokens cap.
// Truncated JSON never validates, so this surfaces as its own error.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response cut off at the token cap"
}
