package ai

import (
	"context"
	"sync"
)

// MockReply is a canned reply for the MockClient.
type MockReply struct {
	Text string
	Err  error
}

// MockClient is a deterministic Client for testing.
// It returns canned replies in FIFO order and records every prompt.
type MockClient struct {
	name       ProviderName
	configured bool

	mu      sync.Mutex
	replies []MockReply
	Prompts []string
}

// NewMockClient creates a configured MockClient with the given replies.
func NewMockClient(name ProviderName, replies ...MockReply) *MockClient {
	return &MockClient{name: name, configured: true, replies: replies}
}

// NewUnconfiguredMockClient creates a MockClient that reports itself as unconfigured.
func NewUnconfiguredMockClient(name ProviderName) *MockClient {
	return &MockClient{name: name}
}

func (m *MockClient) Name() ProviderName { return m.name }

func (m *MockClient) Configured() bool { return m.configured }

// Send returns the next canned reply, or *ErrUnreachable once the queue is empty.
func (m *MockClient) Send(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if !m.configured {
		return "", ErrUnconfigured
	}
	if len(m.replies) == 0 {
		return "", &ErrUnreachable{}
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]
	if reply.Err != nil {
		return "", reply.Err
	}
	return reply.Text, nil
}

// AddReply appends a canned reply to the queue.
func (m *MockClient) AddReply(reply MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply)
}

// CallCount returns the number of Send calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
