package driven

import "context"

// GenAIClient invokes an external generative model. The model returns
// free-form text with no structural contract; callers run responses through
// the normalizer and must tolerate malformed output. Transport, quota, and
// auth failures surface as errors.
type GenAIClient interface {
	// GenerateText sends a text prompt and returns the raw model response
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateFromImage sends a prompt with an inline image payload and
	// returns the raw model response
	GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)

	// Model returns the model name being used
	Model() string
}
