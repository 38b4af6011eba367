package driven

import (
	"context"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

// TokenVerifier validates a bearer credential issued by the external
// identity provider and extracts its claims. The core never inspects
// credential internals beyond what Verify returns.
type TokenVerifier interface {
	// Verify checks the token and returns its identity claims,
	// or domain.ErrTokenInvalid when verification fails
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}
