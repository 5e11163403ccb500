// Package core defines the domain types shared across adforge: campaigns,
// generated content, viral ideas, and virality scores.
package core

import "time"

// Campaign represents a user-defined marketing brief that drives content generation.
type Campaign struct {
	ID                 string      `json:"id"`                  // Unique identifier for the campaign
	Name               string      `json:"name"`                // Campaign / brand name
	ProductDescription string      `json:"product_description"` // What is being marketed
	TargetAudience     string      `json:"target_audience"`     // Free-text audience description
	DesiredEmotion     string      `json:"desired_emotion"`     // Emotion the content should evoke (optional)
	OutputFormats      []string    `json:"output_formats"`      // Requested output format identifiers
	AIProvider         string      `json:"ai_provider"`         // Selected provider: claude | openai | gemini
	Media              []MediaFile `json:"media"`               // Uploaded media descriptors (metadata only)
	CreatedAt          time.Time   `json:"created_at"`          // Timestamp when the campaign was created
}

// MediaFile describes an uploaded media asset. Only the count and type are
// used to build prompt context; file bytes are never fetched.
type MediaFile struct {
	FileType  string `json:"file_type"`  // e.g. "image", "video"
	PublicURL string `json:"public_url"` // Public URL in object storage
}

// GeneratedContent is one piece of generated marketing copy for a single
// output format. Items are immutable once created; regeneration produces a
// brand-new item.
type GeneratedContent struct {
	Format      string    `json:"format"`       // Output format identifier
	Content     string    `json:"content"`      // Provider output (free text)
	GeneratedAt time.Time `json:"generated_at"` // Timestamp when the content was generated
}

// ViralIdea is one structured campaign concept from the ideas-generation path.
// Rank is assigned by array position (1-based), not by sorting on score.
type ViralIdea struct {
	ConceptTitle     string `json:"concept_title"`
	Hook             string `json:"hook"`
	FullScript       string `json:"full_script"`
	ViralExplanation string `json:"viral_explanation"`
	EstimatedScore   int    `json:"estimated_score"` // Clamped to [0,100]
	Rank             int    `json:"rank"`
}

// IdeasBrief is the input to the viral-ideas generation path.
type IdeasBrief struct {
	BrandName          string `json:"brand_name"`
	ProductDescription string `json:"product_description"`
	TargetAudience     string `json:"target_audience"`
	DesiredEmotion     string `json:"desired_emotion"`
	BudgetRange        string `json:"budget_range"`
	Platform           string `json:"platform"`
	NumberOfIdeas      int    `json:"number_of_ideas"`
}

// ScoreFeatures holds the five sub-feature scores of a virality analysis,
// each on a 0-10 scale.
type ScoreFeatures struct {
	HookStrength  float64 `json:"hook_strength"`
	EmotionCurve  float64 `json:"emotion_curve"`
	Shareability  float64 `json:"shareability"`
	MemePotential float64 `json:"meme_potential"`
	PlatformFit   float64 `json:"platform_fit"`
}

// ScorePayload is the structured result of scoring a script/hook pair.
// Every optional field defaults to zero / empty rather than failing.
type ScorePayload struct {
	ViralityScore    int           `json:"virality_score"` // 0-100 overall
	PredictedViews   int64         `json:"predicted_views"`
	PredictedShares  int64         `json:"predicted_shares"`
	Features         ScoreFeatures `json:"features"`
	Strengths        []string      `json:"strengths"`
	Weaknesses       []string      `json:"weaknesses"`
	OptimizationTips []string      `json:"optimization_tips"`
}

// StoryboardFrame is one key frame of an enhanced idea breakdown.
type StoryboardFrame struct {
	Second      float64 `json:"second"`
	Description string  `json:"description"`
}

// IdeaBreakdown is the detailed production breakdown for a single viral idea.
type IdeaBreakdown struct {
	Storyboard     []StoryboardFrame `json:"storyboard"`
	EnhancedScript string            `json:"enhanced_script"`
	MusicStyle     string            `json:"music_style"`
	VisualStyle    string            `json:"visual_style"`
}

// Strategy is a single long-form marketing-plan document generated from one
// prompt/provider call. The text is stored raw; section splitting for display
// is a caller concern.
type Strategy struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Content     string    `json:"content"`
	ModelUsed   string    `json:"model_used"`
	GeneratedAt time.Time `json:"generated_at"`
}
