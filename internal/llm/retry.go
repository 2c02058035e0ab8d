package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider re-runs failed generations with exponential backoff.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider so transient failures are retried up to
// cfg.MaxAttempts times. Schema-invalid output gets a single retry;
// context cancellation and max-token truncation are returned immediately.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidSeen) {
			return nil, err
		}
		if attempt+1 == r.cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.waitBefore(attempt, err)):
		}
	}

	return nil, lastErr
}

// retryable decides whether another attempt can help. invalidSeen tracks
// that a schema-invalid response has already burned its one retry.
func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		// The same request would truncate again.
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}

	// Rate limits, unavailable providers, and unclassified network
	// failures are all worth another attempt.
	return true
}

// waitBefore computes the sleep before the next attempt. Rate-limit hints
// from the provider win over computed backoff.
func (r *retryProvider) waitBefore(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))

	// Spread attempts with up to 20% jitter either way.
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
