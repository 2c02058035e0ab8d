package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags the context with what this request is for, e.g.
// "narrate-path" or "explain-concept". The logging layer stamps the label
// onto the recorded event so usage can be broken down per feature.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the purpose label back, or "unknown" when the caller
// never tagged the context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok {
		return p
	}
	return "unknown"
}
