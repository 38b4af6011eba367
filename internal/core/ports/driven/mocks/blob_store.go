package mocks

import (
	"context"
	"sync"
)

// MockBlobStore is a mock implementation of BlobStore for testing
type MockBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// SaveErr, when set, is returned by every Save call
	SaveErr error
}

// NewMockBlobStore creates a new MockBlobStore
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{
		blobs: make(map[string][]byte),
	}
}

func (m *MockBlobStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if m.SaveErr != nil {
		return "", m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = data
	return "mock://" + name, nil
}

// Get returns a stored blob for test assertions
func (m *MockBlobStore) Get(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[name]
	return data, ok
}
