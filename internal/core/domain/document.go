package domain

import "time"

// Document tracks one uploaded page of notes through its lifecycle:
// uploaded → text extracted → reviewed (optional) → questions generated.
type Document struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	SourceFilename string    `json:"source_filename"`
	MediaType      string    `json:"media_type"`
	AssetPath      string    `json:"asset_path,omitempty"` // where the uploaded image was stored
	CreatedAt      time.Time `json:"created_at"`

	// RawModelText is the unmodified OCR model output. Write-once.
	RawModelText string `json:"raw_model_text"`

	// ExtractedText/ExtractedLines are the best-effort decode of RawModelText.
	// When the model output fails to parse, ExtractedText falls back to the
	// raw output and ExtractedLines is empty.
	ExtractedText  string   `json:"extracted_text"`
	ExtractedLines []string `json:"extracted_lines"`

	// Review state, absent until the first review
	ReviewedText string     `json:"reviewed_text,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	Accepted     bool       `json:"accepted"`
	LastEditor   string     `json:"last_editor,omitempty"`

	// EditHistory is append-only: entries are never mutated or removed
	EditHistory []EditRecord `json:"edit_history,omitempty"`

	// Questions is replaced wholesale by each generation run
	Questions            []Question `json:"questions,omitempty"`
	QuestionsGeneratedAt *time.Time `json:"questions_generated_at,omitempty"`
}

// SourceText resolves the text a generation run should use:
// explicit override first, then the reviewed text, then the extracted text.
// Returns "" when no text is available.
func (d *Document) SourceText(override string) string {
	if override != "" {
		return override
	}
	if d.ReviewedText != "" {
		return d.ReviewedText
	}
	return d.ExtractedText
}

// EditRecord captures one review pass over the extracted text
type EditRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Editor      string    `json:"editor"`
	Accepted    bool      `json:"accepted"`
	TextSnippet string    `json:"text_snippet"` // first 200 chars, not the full text
}

// QuestionType is the question category
type QuestionType string

const (
	QuestionMCQ   QuestionType = "mcq"
	QuestionShort QuestionType = "short"
	QuestionLong  QuestionType = "long"
)

// Question is one generated study question. Only the structural shape is
// guaranteed; field contents come from the model unvalidated.
type Question struct {
	Type        QuestionType `json:"type"`
	Text        string       `json:"question"`
	Options     []string     `json:"options,omitempty"` // MCQ only, 4 labeled choices
	Answer      string       `json:"answer"`
	Explanation string       `json:"explanation"`
	SourceSpan  string       `json:"source_span"`
}

// QuestionCounts is the number of questions requested per category
type QuestionCounts struct {
	MCQ   int `json:"mcq"`
	Short int `json:"short"`
	Long  int `json:"long"`
}

// Valid reports whether all counts are non-negative
func (c QuestionCounts) Valid() bool {
	return c.MCQ >= 0 && c.Short >= 0 && c.Long >= 0
}

// Total returns the number of questions requested across all categories
func (c QuestionCounts) Total() int {
	return c.MCQ + c.Short + c.Long
}

// OCRResult is the structured shape the OCR prompt asks the model for
type OCRResult struct {
	Text  string   `json:"text"`
	Lines []string `json:"lines"`
}
