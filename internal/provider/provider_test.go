package provider

import (
	"context"
	"errors"
	"testing"
)

// stubAdapter implements Adapter for registry tests
type stubAdapter struct {
	name      string
	callCount int
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	s.callCount++
	return "stub response", nil
}

func TestRegistryGet(t *testing.T) {
	claude := &stubAdapter{name: Claude}
	registry := NewRegistry(claude)

	got, err := registry.Get(Claude)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != Adapter(claude) {
		t.Error("Get returned wrong adapter")
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	claude := &stubAdapter{name: Claude}
	registry := NewRegistry(claude)

	_, err := registry.Get("grok")
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Errorf("Expected ErrUnsupportedProvider, got %v", err)
	}

	_, err = registry.Generate(context.Background(), "grok", "prompt", Options{})
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Errorf("Expected ErrUnsupportedProvider from Generate, got %v", err)
	}
	if claude.callCount != 0 {
		t.Errorf("Unknown provider must never reach an adapter, got %d calls", claude.callCount)
	}
}

func TestRegistryEmptyPrompt(t *testing.T) {
	claude := &stubAdapter{name: Claude}
	registry := NewRegistry(claude)

	_, err := registry.Generate(context.Background(), Claude, "", Options{})
	if !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("Expected ErrEmptyPrompt, got %v", err)
	}
	if claude.callCount != 0 {
		t.Errorf("Empty prompt must be rejected before the adapter, got %d calls", claude.callCount)
	}
}

func TestRegistryAvailable(t *testing.T) {
	registry := NewRegistry(
		&stubAdapter{name: Claude},
		&stubAdapter{name: OpenAI},
		&stubAdapter{name: Gemini},
	)

	infos := registry.Available()
	if len(infos) != 3 {
		t.Fatalf("Expected 3 providers, got %d", len(infos))
	}
	if infos[0].ID != Claude || infos[1].ID != OpenAI || infos[2].ID != Gemini {
		t.Errorf("Providers out of registration order: %+v", infos)
	}
	for _, info := range infos {
		if info.Name == "" {
			t.Errorf("Provider %q has no display name", info.ID)
		}
	}
}

func TestVendorErrorMessage(t *testing.T) {
	err := &VendorError{Provider: Claude, Status: 429, Message: "rate limited"}
	want := "claude API error (status 429): rate limited"
	if err.Error() != want {
		t.Errorf("VendorError.Error() = %q, want %q", err.Error(), want)
	}
}
