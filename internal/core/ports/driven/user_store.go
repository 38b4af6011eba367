package driven

import (
	"context"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

// UserStore handles user record persistence keyed by the provider subject ID
type UserStore interface {
	// Save creates or replaces a user record
	Save(ctx context.Context, user *domain.User) error

	// Get retrieves a user by ID, returning domain.ErrNotFound on miss
	Get(ctx context.Context, id string) (*domain.User, error)
}
