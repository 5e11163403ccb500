// Package virality scores a script/hook pair for predicted shareability and
// explains score payloads in prose. Both operations are stateless single-shot
// request/response; no session context is retained between calls.
package virality

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"adforge/internal/core"
	"adforge/internal/logger"
	"adforge/internal/normalize"
	"adforge/internal/prompts"
	"adforge/internal/provider"
)

// scoringTemperature keeps the analysis deterministic-ish; explanation uses a
// warmer setting for readable prose.
const (
	scoringTemperature     = 0.3
	explanationTemperature = 0.7
	explanationMaxTokens   = 1500
)

// Request carries the inputs for one scoring call.
type Request struct {
	Script          string `json:"script"`
	Hook            string `json:"hook"`
	Platform        string `json:"platform"`
	AudienceContext string `json:"audience_context"`
	Emotion         string `json:"emotion"`
}

// Scorer runs virality analysis through a provider registry.
type Scorer struct {
	providers *provider.Registry
	log       *slog.Logger
}

// NewScorer creates a Scorer over the given registry.
func NewScorer(providers *provider.Registry) *Scorer {
	return &Scorer{providers: providers, log: logger.Get()}
}

// Score analyzes a script/hook pair and returns the normalized score payload.
// It fails only when the provider call or JSON extraction fails; missing
// sub-fields in the model's response default per the normalizer.
func (s *Scorer) Score(ctx context.Context, req Request, providerID string) (core.ScorePayload, error) {
	if req.Platform == "" {
		req.Platform = "tiktok"
	}

	prompt := prompts.Score(req.Script, req.Hook, req.Platform, req.AudienceContext, req.Emotion)

	s.log.Info("Scoring script for virality", "platform", req.Platform, "provider", providerID)

	raw, err := s.providers.Generate(ctx, providerID, prompt, provider.Options{Temperature: scoringTemperature})
	if err != nil {
		return core.ScorePayload{}, fmt.Errorf("failed to score idea: %w", err)
	}

	payload, err := normalize.ScorePayload(raw)
	if err != nil {
		return core.ScorePayload{}, fmt.Errorf("failed to parse score response: %w", err)
	}

	s.log.Info("Virality score computed", "score", payload.ViralityScore)
	return payload, nil
}

// Explain turns a score payload back into a prose explanation. The response
// is free text by design and returned unparsed.
func (s *Scorer) Explain(ctx context.Context, payload core.ScorePayload, providerID string) (string, error) {
	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal score payload: %w", err)
	}

	prompt := prompts.ExplainScore(string(payloadJSON))

	explanation, err := s.providers.Generate(ctx, providerID, prompt, provider.Options{
		Temperature: explanationTemperature,
		MaxTokens:   explanationMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to explain score: %w", err)
	}
	return explanation, nil
}
