package services

import (
	"context"
	"errors"
	"time"

	"github.com/quizforge/quizforge-core/internal/core/domain"
	"github.com/quizforge/quizforge-core/internal/core/ports/driven"
	"github.com/quizforge/quizforge-core/internal/core/ports/driving"
)

// Ensure userService implements UserService
var _ driving.UserService = (*userService)(nil)

// userService implements the UserService interface
type userService struct {
	userStore driven.UserStore
}

// NewUserService creates a new UserService
func NewUserService(userStore driven.UserStore) driving.UserService {
	return &userService{userStore: userStore}
}

// GetOrCreate finds the user record for a verified identity, creating it on
// first login. Existing users get their last_login_at refreshed.
func (s *userService) GetOrCreate(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	if identity == nil || identity.Subject == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()

	user, err := s.userStore.Get(ctx, identity.Subject)
	if err == nil {
		user.LastLoginAt = &now
		if err := s.userStore.Save(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user = &domain.User{
		ID:          identity.Subject,
		Email:       identity.Email,
		Name:        identity.Name,
		Picture:     identity.Picture,
		CreatedAt:   now,
		LastLoginAt: &now,
	}
	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
