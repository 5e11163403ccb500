// Package provider exposes a uniform interface over the three supported LLM
// vendors (Claude, OpenAI, Gemini). Each adapter absorbs one vendor's request
// envelope, auth headers, and response shape; callers only see prompt in,
// text out.
package provider

import (
	"context"
	"fmt"
)

// Known provider identifiers.
const (
	Claude = "claude"
	OpenAI = "openai"
	Gemini = "gemini"
)

// Options holds per-call generation parameters. Zero values fall back to the
// adapter's configured defaults, which differ per vendor.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Adapter invokes a single LLM vendor with a prompt and returns the primary
// text completion. One outbound HTTP request per call; no retries.
type Adapter interface {
	// Name returns the provider identifier this adapter serves.
	Name() string

	// Generate submits the prompt and returns the completion text.
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Info describes a configured provider for discovery endpoints.
type Info struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// Registry resolves provider identifiers to adapters.
type Registry struct {
	adapters map[string]Adapter
	order    []string
}

// NewRegistry builds a registry from the given adapters, keyed by name.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	for _, a := range adapters {
		if _, dup := r.adapters[a.Name()]; !dup {
			r.order = append(r.order, a.Name())
		}
		r.adapters[a.Name()] = a
	}
	return r
}

// Get returns the adapter for the given provider id, or
// ErrUnsupportedProvider when the id is not registered. No network call is
// ever made for an unknown id.
func (r *Registry) Get(providerID string) (Adapter, error) {
	a, ok := r.adapters[providerID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, providerID)
	}
	return a, nil
}

// Generate resolves the provider and submits the prompt in one step.
func (r *Registry) Generate(ctx context.Context, providerID, prompt string, opts Options) (string, error) {
	a, err := r.Get(providerID)
	if err != nil {
		return "", err
	}
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	return a.Generate(ctx, prompt, opts)
}

// Available lists registered providers in registration order.
func (r *Registry) Available() []Info {
	displayNames := map[string]string{
		Claude: "Claude (Anthropic)",
		OpenAI: "GPT-4o (OpenAI)",
		Gemini: "Gemini (Google)",
	}
	infos := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		name, ok := displayNames[id]
		if !ok {
			name = id
		}
		infos = append(infos, Info{ID: id, Name: name, Available: true})
	}
	return infos
}
