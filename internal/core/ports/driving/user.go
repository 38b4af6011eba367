package driving

import (
	"context"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

// UserService manages user records derived from verified identity claims
type UserService interface {
	// GetOrCreate returns the user record for the identity's subject,
	// creating it on first login and refreshing last_login_at otherwise
	GetOrCreate(ctx context.Context, identity *domain.Identity) (*domain.User, error)
}
