package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quizforge/quizforge-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.BlobStore = (*LocalStore)(nil)

// LocalStore persists uploaded assets on the local filesystem under a
// single data directory. The returned reference is the absolute path.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the data directory if needed and returns a store
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("blob: data directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: failed to create data directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the asset and returns its path. Names are flattened to
// their base so callers cannot escape the data directory.
func (s *LocalStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if name == "" {
		return "", fmt.Errorf("blob: asset name is empty")
	}

	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("blob: failed to write asset: %w", err)
	}
	return path, nil
}
