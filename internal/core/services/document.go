package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/quizforge/quizforge-core/internal/core/domain"
	"github.com/quizforge/quizforge-core/internal/core/ports/driven"
	"github.com/quizforge/quizforge-core/internal/core/ports/driving"
	"github.com/quizforge/quizforge-core/internal/normalizer"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// snippetLimit caps the text copied into an edit history entry;
// the full text lives only in the reviewed_text field
const snippetLimit = 200

// documentService implements the DocumentService interface
type documentService struct {
	documentStore driven.DocumentStore
	blobStore     driven.BlobStore
	genai         driven.GenAIClient
	logger        *slog.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentStore driven.DocumentStore,
	blobStore driven.BlobStore,
	genai driven.GenAIClient,
	logger *slog.Logger,
) driving.DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentService{
		documentStore: documentStore,
		blobStore:     blobStore,
		genai:         genai,
		logger:        logger,
	}
}

// Upload runs the OCR stage: persist the asset, call the model, fold the
// decoded output into a new document, store it. The document is only
// persisted after a model response is obtained - a failed model call leaves
// no partially-initialized record behind.
func (s *documentService) Upload(ctx context.Context, identity *domain.Identity, req driving.UploadRequest) (*driving.UploadResult, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	if len(req.Data) == 0 {
		return nil, domain.ErrInvalidInput
	}

	docID := generateID()
	filename := req.Filename
	if filename == "" {
		filename = docID + ".bin"
	}
	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	assetPath, err := s.blobStore.Save(ctx, docID+assetExt(filename), req.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to persist asset: %w", err)
	}

	raw, err := s.genai.GenerateFromImage(ctx, ocrPrompt, req.Data, mediaType)
	if err != nil {
		s.logger.Error("ocr model call failed", "doc_id", docID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}

	ocr := decodeOCR(raw)
	doc := &domain.Document{
		ID:             docID,
		OwnerID:        identity.Subject,
		SourceFilename: filename,
		MediaType:      mediaType,
		AssetPath:      assetPath,
		CreatedAt:      time.Now().UTC(),
		RawModelText:   raw,
		ExtractedText:  ocr.Text,
		ExtractedLines: ocr.Lines,
	}
	if err := s.documentStore.Save(ctx, doc); err != nil {
		return nil, err
	}

	return &driving.UploadResult{DocID: docID, Lines: ocr.Lines, OCR: ocr}, nil
}

// Get fetches a document, enforcing ownership
func (s *documentService) Get(ctx context.Context, identity *domain.Identity, id string) (*domain.Document, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	doc, err := s.documentStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.OwnerID != identity.Subject {
		return nil, domain.ErrForbidden
	}
	return doc, nil
}

// Review applies a human correction to the extracted text and appends one
// entry to the append-only edit history
func (s *documentService) Review(ctx context.Context, identity *domain.Identity, id string, req driving.ReviewRequest) (*driving.ReviewResult, error) {
	doc, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	editor := req.Editor
	if editor == "" {
		editor = "unknown"
	}

	doc.ReviewedText = req.CleanedText
	doc.ReviewedAt = &now
	doc.Accepted = req.Accepted
	if req.Editor != "" {
		doc.LastEditor = req.Editor
	}
	doc.EditHistory = append(doc.EditHistory, domain.EditRecord{
		Timestamp:   now,
		Editor:      editor,
		Accepted:    req.Accepted,
		TextSnippet: snippet(req.CleanedText, snippetLimit),
	})

	if err := s.documentStore.Save(ctx, doc); err != nil {
		return nil, err
	}

	return &driving.ReviewResult{Status: "ok", DocID: doc.ID, CleanedAt: now}, nil
}

// generationCategories fixes the category order: mcq, then short, then long.
// The order determines how results aggregate.
var generationCategories = []domain.QuestionType{
	domain.QuestionMCQ,
	domain.QuestionShort,
	domain.QuestionLong,
}

// Generate runs up to three categorized model calls, normalizes each
// response, tags the results, and replaces the document's question set
// wholesale. A category whose output cannot be decoded contributes zero
// questions; a failed model call aborts the whole run with nothing persisted.
func (s *documentService) Generate(ctx context.Context, identity *domain.Identity, req driving.GenerateRequest) (*driving.GenerateResult, error) {
	if req.DocID == "" {
		return nil, domain.ErrInvalidInput
	}
	doc, err := s.Get(ctx, identity, req.DocID)
	if err != nil {
		return nil, err
	}

	var counts domain.QuestionCounts
	if req.Counts != nil {
		counts = *req.Counts
	}
	if !counts.Valid() {
		return nil, domain.ErrInvalidInput
	}

	text := strings.TrimSpace(doc.SourceText(strings.TrimSpace(req.TextOverride)))
	if text == "" {
		return nil, domain.ErrNoSourceText
	}

	questions := make([]domain.Question, 0, counts.Total())
	for _, kind := range generationCategories {
		count := categoryCount(counts, kind)
		if count <= 0 {
			continue
		}

		raw, err := s.genai.GenerateText(ctx, questionPrompt(kind, text, count))
		if err != nil {
			s.logger.Error("generation model call failed",
				"doc_id", doc.ID, "category", string(kind), "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
		}

		v := normalizer.Normalize(raw)
		if v.Kind != normalizer.ParsedArray {
			s.logger.Warn("category output did not decode, skipping",
				"doc_id", doc.ID, "category", string(kind))
			continue
		}
		for _, item := range v.Array {
			questions = append(questions, questionFromObject(item, kind))
		}
	}

	now := time.Now().UTC()
	doc.Questions = questions
	doc.QuestionsGeneratedAt = &now
	if err := s.documentStore.Save(ctx, doc); err != nil {
		return nil, err
	}

	return &driving.GenerateResult{DocID: doc.ID, Questions: questions, GeneratedAt: now}, nil
}

// decodeOCR interprets the raw OCR model output. Decode failure is not
// fatal: the raw text becomes the extracted text and lines stay empty.
func decodeOCR(raw string) *domain.OCRResult {
	v := normalizer.Normalize(raw)
	if v.Kind != normalizer.ParsedObject {
		return &domain.OCRResult{Text: raw, Lines: []string{}}
	}
	return &domain.OCRResult{
		Text:  normalizer.StringField(v.Object, "text"),
		Lines: normalizer.StringSlice(v.Object["lines"]),
	}
}

// questionFromObject builds a Question from one decoded model object.
// Only shape is enforced; absent fields stay empty. A type tag supplied by
// the model wins over the category default.
func questionFromObject(m map[string]any, fallback domain.QuestionType) domain.Question {
	q := domain.Question{
		Type:        fallback,
		Text:        normalizer.StringField(m, "question"),
		Answer:      normalizer.StringField(m, "answer"),
		Explanation: normalizer.StringField(m, "explanation"),
		SourceSpan:  normalizer.StringField(m, "source_span"),
	}
	if t := normalizer.StringField(m, "type"); t != "" {
		q.Type = domain.QuestionType(t)
	}
	if opts := normalizer.StringSlice(m["options"]); len(opts) > 0 {
		q.Options = opts
	}
	return q
}

func categoryCount(c domain.QuestionCounts, kind domain.QuestionType) int {
	switch kind {
	case domain.QuestionMCQ:
		return c.MCQ
	case domain.QuestionShort:
		return c.Short
	default:
		return c.Long
	}
}

// Helper functions

func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func assetExt(filename string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return ext
	}
	return ".png"
}

func snippet(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
