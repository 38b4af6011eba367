package driving

import (
	"context"
	"time"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

// UploadRequest carries one uploaded image of handwritten notes
type UploadRequest struct {
	Filename  string
	MediaType string
	Data      []byte
}

// UploadResult is the response to a successful upload + OCR pass
type UploadResult struct {
	DocID string            `json:"doc_id"`
	Lines []string          `json:"lines"`
	OCR   *domain.OCRResult `json:"ocr_json"`
}

// ReviewRequest carries a human correction of the extracted text
type ReviewRequest struct {
	CleanedText string `json:"cleaned_text"`
	Accepted    bool   `json:"accepted"`
	Editor      string `json:"editor,omitempty"`
}

// ReviewResult acknowledges a stored review
type ReviewResult struct {
	Status    string    `json:"status"`
	DocID     string    `json:"doc_id"`
	CleanedAt time.Time `json:"cleaned_ts"`
}

// GenerateRequest asks for study questions from a document's text
type GenerateRequest struct {
	DocID        string                 `json:"doc_id"`
	TextOverride string                 `json:"text_override,omitempty"`
	Counts       *domain.QuestionCounts `json:"counts,omitempty"`
}

// GenerateResult is the response to a successful generation run
type GenerateResult struct {
	DocID       string            `json:"doc_id"`
	Questions   []domain.Question `json:"questions"`
	GeneratedAt time.Time         `json:"generation_ts"`
}

// DocumentService drives a document through its lifecycle. There is no
// terminal state and no ordering guard beyond upload-first: generation may
// run straight from the extracted text, be re-run after review, and be
// repeated (each run replaces the previous questions).
//
// All operations require a verified identity; document-scoped operations
// additionally check that the identity owns the document.
type DocumentService interface {
	// Upload persists the asset, runs the OCR model call, folds the decoded
	// result into a new document, and stores it
	Upload(ctx context.Context, identity *domain.Identity, req UploadRequest) (*UploadResult, error)

	// Get fetches a document by ID
	Get(ctx context.Context, identity *domain.Identity, id string) (*domain.Document, error)

	// Review applies a human correction and appends to the edit history
	Review(ctx context.Context, identity *domain.Identity, id string, req ReviewRequest) (*ReviewResult, error)

	// Generate produces categorized study questions from the document's text
	// and replaces the stored question set
	Generate(ctx context.Context, identity *domain.Identity, req GenerateRequest) (*GenerateResult, error)
}
