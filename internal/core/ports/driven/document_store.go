package driven

import (
	"context"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

// DocumentStore handles document persistence as opaque records keyed by ID.
// Implementations must write a document atomically: a concurrent reader sees
// either the previous record or the new one, never a mix. No cross-document
// guarantees are required.
type DocumentStore interface {
	// Save creates or replaces a document record
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID, returning domain.ErrNotFound on miss
	Get(ctx context.Context, id string) (*domain.Document, error)
}
