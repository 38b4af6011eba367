package driven

import "context"

// BlobStore persists uploaded binary assets outside the document record.
// Only the returned reference is kept on the document.
type BlobStore interface {
	// Save stores data under the given name and returns a stable reference
	Save(ctx context.Context, name string, data []byte) (string, error)
}
