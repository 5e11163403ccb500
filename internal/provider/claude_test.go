package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClaudeGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("Missing or wrong API key header: %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("Missing anthropic-version header")
		}

		var req claudeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("Expected single user message, got %+v", req.Messages)
		}

		_ = json.NewEncoder(w).Encode(claudeResponse{
			Content: []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			}{{Type: "text", Text: "generated copy"}},
		})
	}))
	defer server.Close()

	client := NewClaudeClient(ClaudeConfig{APIKey: "test-key", BaseURL: server.URL})
	got, err := client.Generate(context.Background(), "write an ad", Options{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "generated copy" {
		t.Errorf("Generate = %q, want %q", got, "generated copy")
	}
}

func TestClaudeMissingAPIKey(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClaudeClient(ClaudeConfig{BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
	if requests != 0 {
		t.Errorf("Missing key must fail before any network call, got %d requests", requests)
	}
}

func TestClaudeVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "rate_limit_error"}`))
	}))
	defer server.Close()

	client := NewClaudeClient(ClaudeConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{})

	var vendorErr *VendorError
	if !errors.As(err, &vendorErr) {
		t.Fatalf("Expected VendorError, got %v", err)
	}
	if vendorErr.Status != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", vendorErr.Status)
	}
	if vendorErr.Provider != Claude {
		t.Errorf("Expected provider %q, got %q", Claude, vendorErr.Provider)
	}
}

func TestClaudeEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": []}`))
	}))
	defer server.Close()

	client := NewClaudeClient(ClaudeConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("Expected ErrEmptyResponse, got %v", err)
	}
}

func TestClaudeOptionsOverrideDefaults(t *testing.T) {
	var captured claudeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(claudeResponse{
			Content: []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			}{{Type: "text", Text: "ok"}},
		})
	}))
	defer server.Close()

	client := NewClaudeClient(ClaudeConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{Temperature: 0.3, MaxTokens: 1500})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if captured.Temperature != 0.3 {
		t.Errorf("Expected temperature 0.3, got %f", captured.Temperature)
	}
	if captured.MaxTokens != 1500 {
		t.Errorf("Expected max tokens 1500, got %d", captured.MaxTokens)
	}
}
