package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

func testIdentity() *domain.Identity {
	return &domain.Identity{
		Subject: "uid-1",
		Email:   "student@example.com",
		Name:    "Student One",
		Picture: "https://example.com/avatar.png",
	}
}

func TestAdapter_VerifyRoundTrip(t *testing.T) {
	adapter := NewAdapter("test-secret")

	token, err := adapter.GenerateToken(testIdentity(), jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	identity, err := adapter.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if identity.Subject != "uid-1" {
		t.Errorf("expected subject uid-1, got %s", identity.Subject)
	}
	if identity.Email != "student@example.com" {
		t.Errorf("expected email student@example.com, got %s", identity.Email)
	}
	if identity.Name != "Student One" {
		t.Errorf("expected name Student One, got %s", identity.Name)
	}
}

func TestAdapter_VerifyRejectsWrongSecret(t *testing.T) {
	adapter := NewAdapter("secret-a")
	other := NewAdapter("secret-b")

	token, err := other.GenerateToken(testIdentity(), jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = adapter.Verify(context.Background(), token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAdapter_VerifyRejectsExpired(t *testing.T) {
	adapter := NewAdapter("test-secret")

	token, err := adapter.GenerateToken(testIdentity(), jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = adapter.Verify(context.Background(), token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestAdapter_VerifyRejectsWrongAlgorithm(t *testing.T) {
	adapter := NewAdapter("test-secret")

	// alg "none" must never pass signature checks
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "uid-1",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = adapter.Verify(context.Background(), signed)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for alg none, got %v", err)
	}
}

func TestAdapter_VerifyRejectsMissingSubject(t *testing.T) {
	adapter := NewAdapter("test-secret")

	token, err := adapter.GenerateToken(&domain.Identity{Email: "nobody@example.com"}, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = adapter.Verify(context.Background(), token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for missing subject, got %v", err)
	}
}

func TestAdapter_VerifyRejectsGarbage(t *testing.T) {
	adapter := NewAdapter("test-secret")

	_, err := adapter.Verify(context.Background(), "not-a-jwt")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
