package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// geminiResponse builds the minimal generateContent response body
func geminiResponse(text string) string {
	body := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{
						map[string]any{"text": text},
					},
				},
			},
		},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func TestNewClient_RequiresKeyAndModel(t *testing.T) {
	if _, err := NewClient("", "gemini-2.0-flash"); err == nil {
		t.Error("expected error for empty api key")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Error("expected error for empty model")
	}
	client, err := NewClient("key", "gemini-2.0-flash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != "gemini-2.0-flash" {
		t.Errorf("expected model gemini-2.0-flash, got %s", client.Model())
	}
}

func TestClient_GenerateText(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiResponse(`[{"question": "q1"}]`)))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL("test-key", "gemini-2.0-flash", server.URL)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	text, err := client.GenerateText(context.Background(), "make questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `[{"question": "q1"}]` {
		t.Errorf("unexpected response text: %q", text)
	}
	if gotPath != "/v1beta/models/gemini-2.0-flash:generateContent" {
		t.Errorf("unexpected request path: %s", gotPath)
	}

	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	if parts[0].(map[string]any)["text"] != "make questions" {
		t.Errorf("prompt not forwarded: %v", parts[0])
	}
}

func TestClient_GenerateFromImage(t *testing.T) {
	image := []byte("fake-image-bytes")
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Write([]byte(geminiResponse(`{"text": "notes", "lines": ["notes"]}`)))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL("test-key", "gemini-2.0-flash", server.URL)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	text, err := client.GenerateFromImage(context.Background(), "transcribe this", image, "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "notes") {
		t.Errorf("unexpected response text: %q", text)
	}

	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	inline := parts[1].(map[string]any)["inline_data"].(map[string]any)
	if inline["mime_type"] != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %v", inline["mime_type"])
	}
	if inline["data"] != base64.StdEncoding.EncodeToString(image) {
		t.Error("image payload not base64-encoded")
	}
}

func TestClient_GenerateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL("test-key", "gemini-2.0-flash", server.URL)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.GenerateText(context.Background(), "make questions")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestClient_GenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL("test-key", "gemini-2.0-flash", server.URL)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.GenerateText(context.Background(), "make questions")
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
