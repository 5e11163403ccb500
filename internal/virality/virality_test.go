package virality

import (
	"context"
	"errors"
	"strings"
	"testing"

	"adforge/internal/core"
	"adforge/internal/provider"
)

// mockAdapter implements provider.Adapter for testing
type mockAdapter struct {
	name       string
	response   string
	err        error
	lastPrompt string
	lastOpts   provider.Options
}

func (m *mockAdapter) Name() string { return m.name }

func (m *mockAdapter) Generate(ctx context.Context, prompt string, opts provider.Options) (string, error) {
	m.lastPrompt = prompt
	m.lastOpts = opts
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestScore(t *testing.T) {
	adapter := &mockAdapter{
		name: "claude",
		response: "```json\n" + `{
			"virality_score": 78,
			"predicted_views": 500000,
			"predicted_shares": 12000,
			"features": {"hook_strength": 9, "emotion_curve": 7, "shareability": 8, "meme_potential": 6, "platform_fit": 9},
			"strengths": ["strong hook"],
			"weaknesses": ["slow middle"],
			"optimization_tips": ["tighten the middle"]
		}` + "\n```",
	}
	scorer := NewScorer(provider.NewRegistry(adapter))

	payload, err := scorer.Score(context.Background(), Request{
		Script: "POV: you found the serum",
		Hook:   "Wait for the glow up",
	}, "claude")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if payload.ViralityScore != 78 {
		t.Errorf("Expected score 78, got %d", payload.ViralityScore)
	}
	if payload.Features.HookStrength != 9 {
		t.Errorf("Expected hook strength 9, got %f", payload.Features.HookStrength)
	}
	if len(payload.OptimizationTips) != 1 {
		t.Errorf("Expected 1 optimization tip, got %d", len(payload.OptimizationTips))
	}

	// Scoring runs at a low temperature and defaults the platform.
	if adapter.lastOpts.Temperature != 0.3 {
		t.Errorf("Expected scoring temperature 0.3, got %f", adapter.lastOpts.Temperature)
	}
	if !strings.Contains(adapter.lastPrompt, "tiktok") {
		t.Error("Expected default platform tiktok in prompt")
	}
}

func TestScoreProviderFailure(t *testing.T) {
	adapter := &mockAdapter{name: "claude", err: errors.New("boom")}
	scorer := NewScorer(provider.NewRegistry(adapter))

	_, err := scorer.Score(context.Background(), Request{Script: "x"}, "claude")
	if err == nil {
		t.Fatal("Expected error when provider fails")
	}
}

func TestScoreMalformedResponse(t *testing.T) {
	adapter := &mockAdapter{name: "claude", response: "I'd rate this pretty viral!"}
	scorer := NewScorer(provider.NewRegistry(adapter))

	_, err := scorer.Score(context.Background(), Request{Script: "x"}, "claude")
	if err == nil {
		t.Fatal("Expected error for malformed score response")
	}
}

func TestExplain(t *testing.T) {
	adapter := &mockAdapter{name: "claude", response: "This score reflects a strong hook."}
	scorer := NewScorer(provider.NewRegistry(adapter))

	payload := core.ScorePayload{ViralityScore: 78}
	explanation, err := scorer.Explain(context.Background(), payload, "claude")
	if err != nil {
		t.Fatalf("Explain returned error: %v", err)
	}
	if explanation != "This score reflects a strong hook." {
		t.Errorf("Unexpected explanation: %q", explanation)
	}

	// The payload is embedded in the prompt; the response stays unparsed.
	if !strings.Contains(adapter.lastPrompt, "78") {
		t.Error("Expected payload score in explanation prompt")
	}
	if adapter.lastOpts.MaxTokens != 1500 {
		t.Errorf("Expected max tokens 1500, got %d", adapter.lastOpts.MaxTokens)
	}
}
