// Package normalize coerces LLM free-text completions into typed values.
// The repair policy is deliberately minimal: strip a markdown code fence,
// parse, and default missing fields. There is no speculative multi-strategy
// recovery; anything beyond a fenced JSON payload is a MalformedResponseError.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"adforge/internal/core"
)

// MalformedResponseError wraps a JSON parse failure on text that was expected
// to contain a structured payload.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed provider response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// StripFences removes a leading/trailing markdown code fence (with or without
// a language tag) from the text, returning the trimmed remainder.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// Drop the language tag, if any, up to the first newline.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if !strings.ContainsAny(firstLine, "{[\"") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// ExtractJSON strips code fences and unmarshals the remainder into v.
func ExtractJSON(raw string, v any) error {
	text := StripFences(raw)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &MalformedResponseError{Err: err}
	}
	return nil
}

// clampInt confines v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat confines v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rawIdea mirrors the JSON shape the ideas prompt elicits. Score is kept raw
// so that a non-numeric value degrades to the default instead of failing the
// whole array.
type rawIdea struct {
	ConceptTitle     string          `json:"concept_title"`
	Hook             string          `json:"hook"`
	FullScript       string          `json:"full_script"`
	ViralExplanation string          `json:"viral_explanation"`
	EstimatedScore   json.RawMessage `json:"estimated_score"`
}

// Ideas parses a raw completion expected to contain a JSON array of campaign
// concepts and normalizes each element: index-based title placeholders, empty
// strings for absent text, estimated_score clamped to [0,100] (50 when absent
// or non-numeric), and rank assigned by 1-based array position. The model's
// array order determines rank; elements are never re-sorted by score.
// Normalization is idempotent.
func Ideas(raw string) ([]core.ViralIdea, error) {
	var parsed []rawIdea
	if err := ExtractJSON(raw, &parsed); err != nil {
		return nil, err
	}

	ideas := make([]core.ViralIdea, 0, len(parsed))
	for i, item := range parsed {
		idea := core.ViralIdea{
			ConceptTitle:     item.ConceptTitle,
			Hook:             item.Hook,
			FullScript:       item.FullScript,
			ViralExplanation: item.ViralExplanation,
			EstimatedScore:   50,
			Rank:             i + 1,
		}
		if idea.ConceptTitle == "" {
			idea.ConceptTitle = fmt.Sprintf("Campaign Idea %d", i+1)
		}
		if score, ok := scoreValue(item.EstimatedScore); ok {
			idea.EstimatedScore = clampInt(score, 0, 100)
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

// scoreValue reads an estimated_score that may arrive as a JSON number or a
// number wrapped in a string. Anything else reports false and the caller's
// default stands.
func scoreValue(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var score float64
	if json.Unmarshal(raw, &score) == nil {
		return int(score), true
	}
	var text string
	if json.Unmarshal(raw, &text) == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return int(parsed), true
		}
	}
	return 0, false
}

// rawScore mirrors the JSON shape the scoring prompt elicits. All fields are
// optional; pointers distinguish absent from zero.
type rawScore struct {
	ViralityScore   *float64 `json:"virality_score"`
	PredictedViews  *float64 `json:"predicted_views"`
	PredictedShares *float64 `json:"predicted_shares"`
	Features        *struct {
		HookStrength  *float64 `json:"hook_strength"`
		EmotionCurve  *float64 `json:"emotion_curve"`
		Shareability  *float64 `json:"shareability"`
		MemePotential *float64 `json:"meme_potential"`
		PlatformFit   *float64 `json:"platform_fit"`
	} `json:"features"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	OptimizationTips []string `json:"optimization_tips"`
}

func featureValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return clampFloat(*v, 0, 10)
}

// ScorePayload parses a raw completion expected to contain a JSON score object
// and normalizes it. Every numeric field defaults to 0 and every array to
// empty when absent; the call only fails when the JSON itself cannot be
// parsed.
func ScorePayload(raw string) (core.ScorePayload, error) {
	var parsed rawScore
	if err := ExtractJSON(raw, &parsed); err != nil {
		return core.ScorePayload{}, err
	}

	payload := core.ScorePayload{
		Strengths:        []string{},
		Weaknesses:       []string{},
		OptimizationTips: []string{},
	}
	if parsed.ViralityScore != nil {
		payload.ViralityScore = clampInt(int(*parsed.ViralityScore), 0, 100)
	}
	if parsed.PredictedViews != nil {
		payload.PredictedViews = int64(*parsed.PredictedViews)
	}
	if parsed.PredictedShares != nil {
		payload.PredictedShares = int64(*parsed.PredictedShares)
	}
	if parsed.Features != nil {
		payload.Features = core.ScoreFeatures{
			HookStrength:  featureValue(parsed.Features.HookStrength),
			EmotionCurve:  featureValue(parsed.Features.EmotionCurve),
			Shareability:  featureValue(parsed.Features.Shareability),
			MemePotential: featureValue(parsed.Features.MemePotential),
			PlatformFit:   featureValue(parsed.Features.PlatformFit),
		}
	}
	if parsed.Strengths != nil {
		payload.Strengths = parsed.Strengths
	}
	if parsed.Weaknesses != nil {
		payload.Weaknesses = parsed.Weaknesses
	}
	if parsed.OptimizationTips != nil {
		payload.OptimizationTips = parsed.OptimizationTips
	}
	return payload, nil
}

// Breakdown parses a raw completion expected to contain the idea-enhancement
// JSON object.
func Breakdown(raw string) (core.IdeaBreakdown, error) {
	var breakdown core.IdeaBreakdown
	if err := ExtractJSON(raw, &breakdown); err != nil {
		return core.IdeaBreakdown{}, err
	}
	if breakdown.Storyboard == nil {
		breakdown.Storyboard = []core.StoryboardFrame{}
	}
	return breakdown, nil
}
