package services

import (
	"context"

	"github.com/quizforge/quizforge-core/internal/core/domain"
	"github.com/quizforge/quizforge-core/internal/core/ports/driven"
	"github.com/quizforge/quizforge-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface. It is a thin pass-through
// to the identity provider's verifier; the core never issues tokens.
type authService struct {
	verifier driven.TokenVerifier
}

// NewAuthService creates a new AuthService
func NewAuthService(verifier driven.TokenVerifier) driving.AuthService {
	return &authService{verifier: verifier}
}

// ValidateToken verifies a bearer token and returns its identity claims
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	return s.verifier.Verify(ctx, token)
}
