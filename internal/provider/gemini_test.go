package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func geminiTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGeminiGenerate(t *testing.T) {
	server := geminiTestServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"parts": [{"text": "generated copy"}], "role": "model"},
			"finishReason": "STOP"
		}]
	}`)
	defer server.Close()

	client := NewGeminiClient(GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	got, err := client.Generate(context.Background(), "write an ad", Options{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "generated copy" {
		t.Errorf("Generate = %q, want %q", got, "generated copy")
	}
}

func TestGeminiContentBlocked(t *testing.T) {
	// No candidate text plus a block reason means the safety filter refused
	// the prompt, which callers must be able to tell apart from a plain
	// empty completion.
	server := geminiTestServer(t, http.StatusOK, `{
		"promptFeedback": {"blockReason": "SAFETY"},
		"candidates": []
	}`)
	defer server.Close()

	client := NewGeminiClient(GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{})
	if !errors.Is(err, ErrContentBlocked) {
		t.Errorf("Expected ErrContentBlocked, got %v", err)
	}
	if errors.Is(err, ErrEmptyResponse) {
		t.Error("Blocked content must not be classified as an empty response")
	}
}

func TestGeminiEmptyResponse(t *testing.T) {
	server := geminiTestServer(t, http.StatusOK, `{"candidates": []}`)
	defer server.Close()

	client := NewGeminiClient(GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("Expected ErrEmptyResponse, got %v", err)
	}
	if errors.Is(err, ErrContentBlocked) {
		t.Error("An empty response without a block reason must not read as blocked")
	}
}

func TestGeminiVendorError(t *testing.T) {
	server := geminiTestServer(t, http.StatusTooManyRequests, `{
		"error": {"code": 429, "message": "rate limited", "status": "RESOURCE_EXHAUSTED"}
	}`)
	defer server.Close()

	client := NewGeminiClient(GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{})

	var vendorErr *VendorError
	if !errors.As(err, &vendorErr) {
		t.Fatalf("Expected VendorError, got %v", err)
	}
	if vendorErr.Status != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", vendorErr.Status)
	}
	if vendorErr.Provider != Gemini {
		t.Errorf("Expected provider %q, got %q", Gemini, vendorErr.Provider)
	}
}

func TestGeminiMissingAPIKey(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{})
	_, err := client.Generate(context.Background(), "prompt", Options{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGeminiDefaults(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{APIKey: "test-key"})
	if client.model != defaultGeminiModel {
		t.Errorf("Expected default model %q, got %q", defaultGeminiModel, client.model)
	}
	if client.maxTokens != defaultGeminiMaxTokens {
		t.Errorf("Expected default max tokens %d, got %d", defaultGeminiMaxTokens, client.maxTokens)
	}
}

func TestGeminiName(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{})
	if client.Name() != Gemini {
		t.Errorf("Expected name %q, got %q", Gemini, client.Name())
	}
}
