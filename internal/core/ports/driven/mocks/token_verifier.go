package mocks

import (
	"context"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

// MockTokenVerifier is a mock implementation of TokenVerifier for testing
type MockTokenVerifier struct {
	// Identities maps token strings to the identity they verify as
	Identities map[string]*domain.Identity
}

// NewMockTokenVerifier creates a new MockTokenVerifier
func NewMockTokenVerifier() *MockTokenVerifier {
	return &MockTokenVerifier{
		Identities: make(map[string]*domain.Identity),
	}
}

func (m *MockTokenVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	identity, ok := m.Identities[token]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return identity, nil
}
