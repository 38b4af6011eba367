package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quizforge/quizforge-core/internal/core/domain"
	"github.com/quizforge/quizforge-core/internal/core/ports/driven/mocks"
)

func TestUserService_GetOrCreate_CreatesOnFirstLogin(t *testing.T) {
	store := mocks.NewMockUserStore()
	svc := NewUserService(store)

	identity := &domain.Identity{
		Subject: "uid-123",
		Email:   "alice@example.com",
		Name:    "Alice",
		Picture: "https://example.com/alice.png",
	}

	user, err := svc.GetOrCreate(context.Background(), identity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "uid-123" {
		t.Errorf("expected ID uid-123, got %s", user.ID)
	}
	if user.Email != "alice@example.com" || user.Name != "Alice" {
		t.Error("claims were not copied onto the user record")
	}
	if user.CreatedAt.IsZero() || user.LastLoginAt == nil {
		t.Error("timestamps were not set")
	}

	stored, err := store.Get(context.Background(), "uid-123")
	if err != nil {
		t.Fatalf("user was not persisted: %v", err)
	}
	if stored.Email != user.Email {
		t.Error("persisted record does not match")
	}
}

func TestUserService_GetOrCreate_RefreshesExistingUser(t *testing.T) {
	store := mocks.NewMockUserStore()
	svc := NewUserService(store)

	created := time.Now().UTC().Add(-24 * time.Hour)
	_ = store.Save(context.Background(), &domain.User{
		ID:        "uid-123",
		Email:     "alice@example.com",
		CreatedAt: created,
	})

	user, err := svc.GetOrCreate(context.Background(), &domain.Identity{Subject: "uid-123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !user.CreatedAt.Equal(created) {
		t.Error("created_at must not change on repeat login")
	}
	if user.LastLoginAt == nil || time.Since(*user.LastLoginAt) > time.Minute {
		t.Error("last_login_at was not refreshed")
	}
	if user.Email != "alice@example.com" {
		t.Error("existing profile data was lost")
	}
}

func TestUserService_GetOrCreate_RejectsMissingSubject(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserStore())

	_, err := svc.GetOrCreate(context.Background(), &domain.Identity{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.GetOrCreate(context.Background(), nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil identity, got %v", err)
	}
}
