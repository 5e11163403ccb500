package normalize

import (
	"errors"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.input)
			if got != tt.expected {
				t.Errorf("StripFences(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	input := "```json\n[{\"concept_title\":\"Test\"}]\n```"
	once := StripFences(input)
	twice := StripFences(once)
	if once != twice {
		t.Errorf("StripFences is not idempotent: %q vs %q", once, twice)
	}
}

func TestExtractJSONMalformed(t *testing.T) {
	var v map[string]interface{}
	err := ExtractJSON("I'm sorry, I can't produce JSON for that.", &v)
	if err == nil {
		t.Fatal("Expected error for non-JSON input")
	}
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Errorf("Expected MalformedResponseError, got %T", err)
	}
}

func TestIdeasNormalization(t *testing.T) {
	raw := "```json\n" + `[
		{"concept_title": "The Glow Up", "hook": "Wait for it", "full_script": "script text", "viral_explanation": "relatable", "estimated_score": 85},
		{"hook": "no title here", "estimated_score": 250},
		{"concept_title": "Low", "estimated_score": -10},
		{"concept_title": "No Score"},
		{"concept_title": "Bad Score", "estimated_score": "very high"},
		{"concept_title": "String Score", "estimated_score": "85"}
	]` + "\n```"

	ideas, err := Ideas(raw)
	if err != nil {
		t.Fatalf("Ideas returned error: %v", err)
	}
	if len(ideas) != 6 {
		t.Fatalf("Expected 6 ideas, got %d", len(ideas))
	}

	if ideas[0].ConceptTitle != "The Glow Up" || ideas[0].EstimatedScore != 85 {
		t.Errorf("First idea not preserved: %+v", ideas[0])
	}
	if ideas[1].ConceptTitle != "Campaign Idea 2" {
		t.Errorf("Expected placeholder title for untitled idea, got %q", ideas[1].ConceptTitle)
	}
	if ideas[1].EstimatedScore != 100 {
		t.Errorf("Expected score 250 clamped to 100, got %d", ideas[1].EstimatedScore)
	}
	if ideas[2].EstimatedScore != 0 {
		t.Errorf("Expected score -10 clamped to 0, got %d", ideas[2].EstimatedScore)
	}
	if ideas[3].EstimatedScore != 50 {
		t.Errorf("Expected default score 50 for absent score, got %d", ideas[3].EstimatedScore)
	}
	if ideas[4].EstimatedScore != 50 {
		t.Errorf("Expected default score 50 for non-numeric score, got %d", ideas[4].EstimatedScore)
	}
	if ideas[5].EstimatedScore != 85 {
		t.Errorf("Expected string-encoded score 85 coerced, got %d", ideas[5].EstimatedScore)
	}

	// Rank follows array position, even when a later idea scores higher.
	for i, idea := range ideas {
		if idea.Rank != i+1 {
			t.Errorf("Expected rank %d at position %d, got %d", i+1, i, idea.Rank)
		}
	}
}

func TestIdeasMalformed(t *testing.T) {
	_, err := Ideas("not json at all")
	if err == nil {
		t.Fatal("Expected error for malformed ideas response")
	}
}

func TestScorePayloadDefaults(t *testing.T) {
	// Only virality_score present; everything else must default, not fail.
	payload, err := ScorePayload(`{"virality_score": 72}`)
	if err != nil {
		t.Fatalf("ScorePayload returned error: %v", err)
	}
	if payload.ViralityScore != 72 {
		t.Errorf("Expected virality score 72, got %d", payload.ViralityScore)
	}
	if payload.PredictedViews != 0 || payload.PredictedShares != 0 {
		t.Errorf("Expected zero predictions, got views=%d shares=%d", payload.PredictedViews, payload.PredictedShares)
	}
	if payload.Strengths == nil || payload.Weaknesses == nil || payload.OptimizationTips == nil {
		t.Error("Expected empty slices, not nil")
	}
	if len(payload.Strengths) != 0 {
		t.Errorf("Expected no strengths, got %v", payload.Strengths)
	}
}

func TestScorePayloadClamping(t *testing.T) {
	raw := `{
		"virality_score": 150,
		"predicted_views": 50000,
		"features": {"hook_strength": 15, "emotion_curve": -2, "shareability": 7.5}
	}`
	payload, err := ScorePayload(raw)
	if err != nil {
		t.Fatalf("ScorePayload returned error: %v", err)
	}
	if payload.ViralityScore != 100 {
		t.Errorf("Expected score clamped to 100, got %d", payload.ViralityScore)
	}
	if payload.Features.HookStrength != 10 {
		t.Errorf("Expected hook strength clamped to 10, got %f", payload.Features.HookStrength)
	}
	if payload.Features.EmotionCurve != 0 {
		t.Errorf("Expected emotion curve clamped to 0, got %f", payload.Features.EmotionCurve)
	}
	if payload.Features.Shareability != 7.5 {
		t.Errorf("Expected shareability 7.5 untouched, got %f", payload.Features.Shareability)
	}
	if payload.PredictedViews != 50000 {
		t.Errorf("Expected predicted views 50000, got %d", payload.PredictedViews)
	}
}

func TestBreakdownDefaults(t *testing.T) {
	breakdown, err := Breakdown(`{"enhanced_script": "better script"}`)
	if err != nil {
		t.Fatalf("Breakdown returned error: %v", err)
	}
	if breakdown.EnhancedScript != "better script" {
		t.Errorf("Expected enhanced script preserved, got %q", breakdown.EnhancedScript)
	}
	if breakdown.Storyboard == nil {
		t.Error("Expected empty storyboard slice, not nil")
	}
}
