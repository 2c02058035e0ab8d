package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted responses in order and keeps every request
// it saw. Tests read Calls directly to assert on prompts.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	next      int
	Calls     []Request
}

// NewMockProvider scripts the given responses, consumed first to last.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// AddResponse scripts one more response after those already queued.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	m.responses = append(m.responses, resp)
	m.mu.Unlock()
}

// Generate records the request and replays the next scripted response.
// Once the script runs out every call fails with ErrProviderUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.next >= len(m.responses) {
		return nil, &ErrProviderUnavailable{}
	}
	scripted := m.responses[m.next]
	m.next++

	if scripted.Err != nil {
		return nil, scripted.Err
	}
	return &Response{
		Content:    scripted.Content,
		Usage:      scripted.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many times Generate ran.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
