// Package prompts builds the instruction prompts sent to LLM providers. Each
// output format maps to a fixed instructional template; campaign attributes
// are interpolated into a shared context block. Numeric constraints (character
// counts, hashtag counts) are stated as instructions to the model; nothing
// here validates the returned text against them.
package prompts

import (
	"fmt"
	"strings"

	"adforge/internal/core"
	"adforge/internal/formats"
)

// notSpecified is the graceful fallback for absent optional campaign fields.
const notSpecified = "Not specified"

func orFallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

// campaignContext renders the shared brief block that precedes every
// format-specific instruction. The campaign name always appears verbatim.
func campaignContext(c core.Campaign, mediaNote string) string {
	ctx := fmt.Sprintf(`Campaign: %s
Product: %s
Target Audience: %s
Desired Emotion: %s`,
		c.Name,
		orFallback(c.ProductDescription),
		orFallback(c.TargetAudience),
		orFallback(c.DesiredEmotion))
	if mediaNote != "" {
		ctx += "\n" + mediaNote
	}
	return ctx
}

// MediaNote builds the textual media-context paragraph for a campaign's
// uploaded files. Only the count and types are used; no bytes are ever sent
// to a provider.
func MediaNote(files []core.MediaFile) string {
	if len(files) == 0 {
		return ""
	}
	return fmt.Sprintf("\nUPLOADED MEDIA:\nThe campaign has %d media file(s) uploaded (product images/videos). Consider these visuals when creating content - reference the product's appearance, colors, and key visual elements in your content suggestions.\n", len(files))
}

// formatInstructions holds the fixed per-format instruction templates.
var formatInstructions = map[formats.Format]string{
	formats.TikTokScript: `Create a viral TikTok/Reels script (15-60 seconds).

Requirements:
- Hook in first 3 seconds that stops the scroll
- Visual directions in [brackets]
- Conversational, authentic tone
- Clear call-to-action
- Trending sound suggestions, text overlays, hashtags

Format:
HOOK (0-3s): [what happens]
BODY (3-45s): [main content with product showcase]
CTA (45-60s): [call to action]`,

	formats.YouTubeShorts: `Create a YouTube Shorts script (60 seconds max).

Requirements:
- Strong opening hook that stops the scroll
- Fast-paced content delivery
- Visual cues in [brackets]
- Educational or entertaining angle
- Subscribe reminder

Format:
HOOK (0-5s): [opening]
CONTENT (5-50s): [main points]
CTA (50-60s): [subscribe + next steps]`,

	formats.InstagramCaption: `Write an engaging Instagram caption.

Requirements:
- Attention-grabbing first line
- Story/value proposition (2-3 lines)
- 15-20 relevant hashtags
- Tasteful emoji usage for engagement
- Clear call-to-action

Keep it authentic and conversational.

Format:
[Opening hook]
[Body text]
[Call to action]
[Hashtags]`,

	formats.TwitterPost: `Create 3 Twitter/X post variations.

Each tweet should:
- Be under 280 characters
- Have a clear hook in the first line
- Include 2-3 relevant hashtags
- Have a strong call-to-action
- Be punchy and engaging

Provide 3 different angles/approaches.`,

	formats.FacebookPost: `Write a Facebook post.

Requirements:
- Community-focused, conversational tone
- Story-driven (2-3 paragraphs, 100-250 words)
- Clear value proposition
- Engaging question or call-to-action
- 3-5 relevant hashtags
- Emoji for personality

Make it shareable and comment-worthy.`,

	formats.EmailMarketing: `Write email marketing copy.

Requirements:
- Compelling subject line (50 characters max)
- Preview text (100 characters max)
- Personalized greeting
- Scannable body (bullets/short paragraphs)
- Strong CTA button text
- P.S. line with urgency

Format:
SUBJECT: [subject line]
PREVIEW: [preview text]
BODY: [email content]
CTA: [button text]
P.S.: [urgency message]`,

	formats.SMSMessage: `Write an SMS/WhatsApp message (160 characters max).

Requirements:
- Ultra-concise
- Clear offer
- Urgency element
- Link or code placeholder
- Friendly tone`,

	formats.FlyerText: `Write flyer/poster text.

Requirements:
- Bold headline (5-10 words)
- Subheadline explaining the benefit
- 3-5 bullet points
- Contact info placeholder
- Special offer if applicable

Format:
HEADLINE: [main headline]
SUBHEADLINE: [benefit statement]
BULLETS: [key points]
CTA: [action to take]`,

	formats.BannerAd: `Write banner ad copy.

Requirements:
- Headline (5-8 words max)
- Subtext (10-15 words)
- CTA button text (2-3 words)
- Size variation notes for 728x90, 300x250, 160x600
- Ultra-concise and attention-grabbing`,

	formats.PrintAd: `Write full print advertisement copy.

Requirements:
- Main headline (powerful, memorable)
- Supporting subheadline
- Body copy (100-150 words, benefit-focused)
- Visual concept description
- Call to action
- Contact/website info placeholder

Format:
HEADLINE: [main headline]
SUBHEADLINE: [supporting line]
BODY: [ad copy]
VISUAL NOTES: [suggested images/layout]
CTA: [call to action]`,

	formats.LinkedInPost: `Write a professional LinkedIn post.

Requirements:
- Thought leadership angle
- Professional but authentic tone
- Industry insight or problem statement
- Personal story/experience
- 3-5 relevant professional hashtags
- Encourages discussion

Format:
HOOK: [opening line]
STORY/INSIGHT: [main content]
TAKEAWAY: [key lesson]
CTA: [discussion prompt]
HASHTAGS: [professional tags]`,

	formats.YouTubeAd: `Write a YouTube pre-roll ad script (15-30 seconds).

Requirements:
- Attention hook in first 5 seconds (before the skip button)
- Problem -> Solution structure
- Strong CTA with urgency
- Visual directions

Format:
HOOK (0-5s): [grab attention before skip]
PROBLEM (5-15s): [pain point]
SOLUTION (15-25s): [your product]
CTA (25-30s): [urgent call to action]`,

	formats.GoogleAd: `Write Google Search Ad copy.

Requirements:
- 3 headlines (30 characters each)
- 2 descriptions (90 characters each)
- Include keywords naturally
- Clear value proposition
- Strong CTA

Format:
HEADLINE 1: [30 chars]
HEADLINE 2: [30 chars]
HEADLINE 3: [30 chars]
DESCRIPTION 1: [90 chars]
DESCRIPTION 2: [90 chars]
URL: [display URL]`,
}

// Render combines the campaign context with the instruction template for the
// given format. The second return is false when the format has no template;
// callers are expected to skip such formats, not fail.
func Render(formatID string, c core.Campaign, mediaNote string) (string, bool) {
	instructions, ok := formatInstructions[formats.Format(formatID)]
	if !ok {
		return "", false
	}
	return campaignContext(c, mediaNote) + "\n\n" + instructions, true
}

// Strategy builds the single comprehensive marketing-strategy prompt.
func Strategy(c core.Campaign) string {
	channels := "Multiple platforms"
	if len(c.OutputFormats) > 0 {
		channels = strings.Join(c.OutputFormats, ", ")
	}
	platformTactics := channels
	if len(c.OutputFormats) > 5 {
		platformTactics = strings.Join(c.OutputFormats[:5], ", ")
	}

	return fmt.Sprintf(`You are an expert marketing strategist with deep industry knowledge.

Campaign Details:
- Campaign Name: %s
- Product/Service: %s
- Target Audience: %s
- Distribution Channels: %s

Generate a comprehensive, data-driven marketing strategy that includes:

1. CAMPAIGN OBJECTIVES
   - 3-5 specific, measurable goals based on industry benchmarks
   - Primary objective with clear success criteria
   - Secondary objectives supporting brand building

2. TARGET AUDIENCE ANALYSIS
   - Demographics and psychographics
   - Pain points and desires
   - Media consumption habits and preferred platforms
   - Decision-making factors and purchase triggers
   - Audience personas with specific characteristics

3. KEY MESSAGES & VALUE PROPOSITIONS
   - Primary value proposition (unique selling point)
   - 3-5 core messages for different audience segments
   - Emotional appeals and rational benefits
   - Brand positioning statement
   - Competitive differentiation points

4. CONTENT STRATEGY
   - Content pillars with 40/30/20/10 breakdown:
     * 40%% Educational/Value-driven content
     * 30%% Behind-the-scenes/Brand storytelling
     * 20%% Product-focused content
     * 10%% User-generated content/Community
   - Content themes and messaging calendar
   - Optimal posting frequency for each platform

5. DISTRIBUTION PLAN
   - Platform-specific tactics for: %s
   - Organic strategy with content optimization
   - Paid advertising approach with budget allocation
   - Cross-promotion and influencer collaboration opportunities
   - Email marketing integration

6. BUDGET RECOMMENDATIONS
   - Allocation percentages: 60%% paid ads, 25%% content creation, 10%% tools, 5%% influencers
   - Cost-effective approaches for maximum ROI
   - Scaling strategies based on performance

7. SUCCESS METRICS & KPIs
   - Primary metrics: Conversion rate, ROAS, engagement rate
   - Secondary metrics: Brand awareness, reach, share of voice
   - Platform-specific KPIs with realistic benchmarks:
     * Social media: 2-5%% engagement rate target
     * Email: 20-25%% open rate, 3-5%% click rate
     * Paid ads: 2-4%% CTR, $10-50 CPA depending on industry

8. TIMELINE & MILESTONES
   - Week 1-2: Campaign launch and initial optimization
   - Week 3-4: Scale successful elements, pause underperformers
   - Month 2: Mid-campaign analysis and strategy refinement
   - Month 3: Full optimization and preparation for next phase

9. COMPETITIVE INSIGHTS
   - Competitive landscape analysis
   - Gaps in competitor strategies to exploit
   - Market positioning advantages

10. OPTIMIZATION RECOMMENDATIONS
    - A/B testing ideas for ads, content, and landing pages
    - Continuous improvement tactics
    - Performance monitoring schedule

Be specific, actionable, and data-driven. Provide realistic industry benchmarks and concrete next steps.`,
		c.Name,
		orFallback(c.ProductDescription),
		orFallback(c.TargetAudience),
		channels,
		platformTactics)
}

// ViralIdeas builds the structured-ideas prompt. The model is instructed to
// return only a JSON array; parsing and normalization happen downstream.
func ViralIdeas(b core.IdeasBrief) string {
	return fmt.Sprintf(`You are a viral marketing genius who has studied campaigns like Dollar Shave Club, Old Spice, and the ALS Ice Bucket Challenge. Generate %d viral %s campaign concepts.

**BRAND BRIEF:**
- Brand: %s
- Product: %s
- Target Audience: %s
- Desired Emotion: %s
- Budget: %s
- Platform: %s

**YOUR TASK:**
Generate %d campaign concepts. Each must include:
1. concept_title (5-10 words, punchy)
2. hook (First 3 seconds - must STOP the scroll)
3. full_script (15-60 seconds, complete script)
4. viral_explanation (Why it will go viral)
5. estimated_score (0-100, realistic)

**VIRAL PRINCIPLES:**
- Pattern interrupt in first 0.8 seconds
- Emotional curve: surprise, peak, payoff
- Shareability: identity, status, humor, awe
- Meme-ability: can people remix this?

**OUTPUT FORMAT:**
Return ONLY a valid JSON array:

[
  {
    "concept_title": "string",
    "hook": "string",
    "full_script": "string",
    "viral_explanation": "string",
    "estimated_score": number
  }
]

Be BOLD and CREATIVE. No generic corporate speak. Output ONLY the JSON array:`,
		b.NumberOfIdeas, b.Platform,
		b.BrandName,
		orFallback(b.ProductDescription),
		orFallback(b.TargetAudience),
		orFallback(b.DesiredEmotion),
		orFallback(b.BudgetRange),
		b.Platform,
		b.NumberOfIdeas)
}

// Score builds the virality analysis prompt for a script/hook pair.
func Score(script, hook, platform, audienceContext, emotion string) string {
	return fmt.Sprintf(`You are a viral content analyst with data from 10,000+ viral campaigns. Analyze this %s script and provide a virality score.

**SCRIPT TO ANALYZE:**
Hook (first 3 seconds): "%s"
Full Script: "%s"
Platform: %s
Target Audience: %s
Desired Emotion: %s

**EVALUATE THESE FEATURES (0-10 each):**
1. Hook Strength - Does it stop the scroll?
2. Emotion Curve - Surprise to peak to payoff?
3. Shareability - Would people share this?
4. Meme Potential - Can people remix this?
5. Platform Fit - Optimized for %s?

**SCORING BENCHMARKS:**
- 0-30: Under 10K views
- 31-50: 10K-100K views
- 51-70: 100K-1M views
- 71-85: 1M-10M views
- 86-100: 10M+ views (rare)

**OUTPUT FORMAT:**
Return ONLY valid JSON:

{
  "virality_score": number,
  "predicted_views": number,
  "predicted_shares": number,
  "features": {
    "hook_strength": number,
    "emotion_curve": number,
    "shareability": number,
    "meme_potential": number,
    "platform_fit": number
  },
  "strengths": ["strength1", "strength2"],
  "weaknesses": ["weakness1", "weakness2"],
  "optimization_tips": ["tip1", "tip2", "tip3"]
}

Be honest and data-driven. Output ONLY JSON:`,
		platform, hook, script, platform,
		orFallback(audienceContext),
		orFallback(emotion),
		platform)
}

// ExplainScore builds the prose-explanation prompt for a score payload. The
// payload JSON is embedded as context; the response is free text by design.
func ExplainScore(payloadJSON string) string {
	return fmt.Sprintf(`You are a viral marketing educator. Explain this virality score in simple terms for a marketing agency.

**SCORE DATA:**
%s

**EXPLAIN:**
1. Overall assessment (2-3 sentences)
2. Why this score was given
3. What the numbers mean (views, shares, ROI)
4. Top 3 things to improve
5. Top 3 things working well

Be conversational and actionable.`, payloadJSON)
}

// EnhanceIdea builds the production-breakdown prompt for a single viral idea.
func EnhanceIdea(idea core.ViralIdea) string {
	return fmt.Sprintf(`You are a viral content director. Create a detailed breakdown for this campaign:

**CONCEPT:**
Title: %s
Hook: %s
Script: %s

**CREATE:**
1. Shot-by-shot storyboard (5-10 key frames)
2. Enhanced script with timing
3. Music/sound recommendations
4. Visual style guide

Return as JSON:
{
  "storyboard": [{"second": 0, "description": "..."}],
  "enhanced_script": "...",
  "music_style": "...",
  "visual_style": "..."
}`,
		idea.ConceptTitle, idea.Hook, idea.FullScript)
}
