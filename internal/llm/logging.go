package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/store"
)

// eventLogger records one event per Generate call, success or not.
type eventLogger struct {
	inner  Provider
	name   string
	events store.EventRepo
}

// WithLogging wraps a Provider so every request lands in the event log.
// name is the configured provider ("anthropic", "openai", ...), recorded
// alongside the model ID so usage can be grouped by either.
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &eventLogger{inner: p, name: name, events: repo}
}

func (l *eventLogger) ModelID() string { return l.inner.ModelID() }

func (l *eventLogger) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderPrompt(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// A broken event log must not take narration down with it.
	if logErr := l.events.AppendLLMRequest(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

// renderPrompt flattens a request into the readable transcript stored on
// the event, one bracketed section per part.
func renderPrompt(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
