package handlers

import (
	"adforge/internal/config"
	"adforge/internal/generate"
	"adforge/internal/provider"
	"adforge/internal/virality"
)

// buildRegistry wires all three vendor adapters from configuration. Adapters
// with no API key are still registered; they fail at call time so that the
// selected provider's misconfiguration is reported, not hidden.
func buildRegistry(cfg *config.Config) *provider.Registry {
	return provider.NewRegistry(
		provider.NewClaudeClient(provider.ClaudeConfig{
			APIKey:    cfg.AI.Claude.APIKey,
			Model:     cfg.AI.Claude.Model,
			MaxTokens: cfg.AI.Claude.MaxTokens,
			BaseURL:   cfg.AI.Claude.BaseURL,
		}),
		provider.NewOpenAIClient(provider.OpenAIConfig{
			APIKey:    cfg.AI.OpenAI.APIKey,
			Model:     cfg.AI.OpenAI.Model,
			MaxTokens: cfg.AI.OpenAI.MaxTokens,
			BaseURL:   cfg.AI.OpenAI.BaseURL,
		}),
		provider.NewGeminiClient(provider.GeminiConfig{
			APIKey:    cfg.AI.Gemini.APIKey,
			Model:     cfg.AI.Gemini.Model,
			MaxTokens: cfg.AI.Gemini.MaxTokens,
			BaseURL:   cfg.AI.Gemini.BaseURL,
		}),
	)
}

// buildPipeline wires the generator and scorer over one shared registry.
func buildPipeline(cfg *config.Config) (*provider.Registry, *generate.Generator, *virality.Scorer) {
	registry := buildRegistry(cfg)
	generator := generate.New(registry, generate.Options{CallDelay: cfg.Generation.CallDelay})
	scorer := virality.NewScorer(registry)
	return registry, generator, scorer
}
