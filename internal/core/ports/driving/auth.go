package driving

import (
	"context"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

// AuthService resolves bearer tokens to identities for the HTTP layer
type AuthService interface {
	// ValidateToken verifies a bearer token and returns the identity it
	// carries, or domain.ErrTokenInvalid
	ValidateToken(ctx context.Context, token string) (*domain.Identity, error)
}
