package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Missing or wrong Authorization header: %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "generated copy"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
	got, err := client.Generate(context.Background(), "write an ad", Options{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "generated copy" {
		t.Errorf("Generate = %q, want %q", got, "generated copy")
	}
}

func TestOpenAIMissingAPIKey(t *testing.T) {
	client := NewOpenAIClient(OpenAIConfig{})
	_, err := client.Generate(context.Background(), "prompt", Options{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestOpenAIVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid key"}}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "bad-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{})

	var vendorErr *VendorError
	if !errors.As(err, &vendorErr) {
		t.Fatalf("Expected VendorError, got %v", err)
	}
	if vendorErr.Status != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", vendorErr.Status)
	}
	if vendorErr.Provider != OpenAI {
		t.Errorf("Expected provider %q, got %q", OpenAI, vendorErr.Provider)
	}
}

func TestOpenAIEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", Options{})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("Expected ErrEmptyResponse, got %v", err)
	}
}
