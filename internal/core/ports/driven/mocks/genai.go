package mocks

import (
	"context"
	"sync"
)

// MockGenAIClient is a mock implementation of GenAIClient for testing.
// Responses are consumed in order; prompts are recorded for inspection.
type MockGenAIClient struct {
	mu      sync.Mutex
	Prompts []string

	// GenerateTextFn, when set, handles GenerateText calls
	GenerateTextFn func(ctx context.Context, prompt string) (string, error)

	// GenerateFromImageFn, when set, handles GenerateFromImage calls
	GenerateFromImageFn func(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)

	// Responses are returned in order by GenerateText when GenerateTextFn is nil
	Responses []string

	// Err, when set, is returned by every call
	Err error
}

// NewMockGenAIClient creates a new MockGenAIClient
func NewMockGenAIClient() *MockGenAIClient {
	return &MockGenAIClient{}
}

func (m *MockGenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt)
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	resp := m.Responses[0]
	m.Responses = m.Responses[1:]
	return resp, nil
}

func (m *MockGenAIClient) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.GenerateFromImageFn != nil {
		return m.GenerateFromImageFn(ctx, prompt, image, mimeType)
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	resp := m.Responses[0]
	m.Responses = m.Responses[1:]
	return resp, nil
}

func (m *MockGenAIClient) Model() string { return "mock-model" }
