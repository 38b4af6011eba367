package services

import (
	"context"
	"errors"
	"testing"

	"github.com/quizforge/quizforge-core/internal/core/domain"
	"github.com/quizforge/quizforge-core/internal/core/ports/driven/mocks"
)

func TestAuthService_ValidateToken(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier()
	verifier.Identities["good-token"] = &domain.Identity{Subject: "uid-1"}
	svc := NewAuthService(verifier)

	identity, err := svc.ValidateToken(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Subject != "uid-1" {
		t.Errorf("expected subject uid-1, got %s", identity.Subject)
	}

	_, err = svc.ValidateToken(context.Background(), "bad-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}

	_, err = svc.ValidateToken(context.Background(), "")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for empty token, got %v", err)
	}
}
