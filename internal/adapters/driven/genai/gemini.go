package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quizforge/quizforge-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.GenAIClient = (*Client)(nil)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Client calls the Gemini generateContent REST API. Responses come back
// as free-form text; structural cleanup is the caller's problem.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

// NewClient creates a Gemini client for the given model
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is empty")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini: model is empty")
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// NewClientWithBaseURL creates a client pointed at a custom endpoint.
// Used by tests to stand in a local server for the Gemini API.
func NewClientWithBaseURL(apiKey, model, baseURL string) (*Client, error) {
	c, err := NewClient(apiKey, model)
	if err != nil {
		return nil, err
	}
	c.baseURL = baseURL
	return c, nil
}

// Model returns the model name being used
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends a text-only prompt and returns the raw model response
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	parts := []any{
		map[string]any{"text": prompt},
	}
	return c.generate(ctx, parts)
}

// GenerateFromImage sends a prompt with an inline image payload and returns
// the raw model response
func (c *Client) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := []any{
		map[string]any{"text": prompt},
		map[string]any{"inline_data": map[string]any{
			"mime_type": mimeType,
			"data":      base64.StdEncoding.EncodeToString(image),
		}},
	}
	return c.generate(ctx, parts)
}

func (c *Client) generate(ctx context.Context, parts []any) (string, error) {
	body := map[string]any{
		"contents": []any{
			map[string]any{"parts": parts},
		},
		"generationConfig": map[string]any{"temperature": 0},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini %d: %s", resp.StatusCode, string(x))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
