// Package generate orchestrates multi-format content generation, strategy
// generation, and structured idea generation for a campaign.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"adforge/internal/core"
	"adforge/internal/logger"
	"adforge/internal/normalize"
	"adforge/internal/prompts"
	"adforge/internal/provider"
)

// DefaultCallDelay is the cooperative pause between successive provider calls
// in a multi-format batch. It exists to stay under per-minute rate limits on
// free vendor tiers; it is a tunable heuristic, not a rate limiter.
const DefaultCallDelay = 1 * time.Second

// DefaultIdeasCount is how many viral ideas one generation request asks for.
const DefaultIdeasCount = 10

// ErrNoFormats is returned when a multi-format request names no output formats.
var ErrNoFormats = errors.New("no output formats requested")

// Options configures a Generator.
type Options struct {
	CallDelay time.Duration // pause between provider calls; DefaultCallDelay when zero
}

// Generator runs generation workflows against a provider registry. It is
// stateless across requests; formats within one batch are processed strictly
// sequentially to respect provider rate limits.
type Generator struct {
	providers *provider.Registry
	delay     time.Duration
	sleep     func(context.Context, time.Duration) error
	now       func() time.Time
	log       *slog.Logger
}

// New creates a Generator over the given provider registry.
func New(providers *provider.Registry, opts Options) *Generator {
	delay := opts.CallDelay
	if delay <= 0 {
		delay = DefaultCallDelay
	}
	return &Generator{
		providers: providers,
		delay:     delay,
		sleep:     sleepCtx,
		now:       time.Now,
		log:       logger.Get(),
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// MultiFormat generates one piece of content per requested format, in the
// order given. Unknown formats are skipped with a warning. A provider failure
// for one format produces an item whose content embeds the failure message;
// the rest of the batch continues. The call itself only fails when the format
// list is empty or the provider id is unknown.
func (g *Generator) MultiFormat(ctx context.Context, campaign core.Campaign, requestedFormats []string, providerID string) ([]core.GeneratedContent, error) {
	if len(requestedFormats) == 0 {
		return nil, ErrNoFormats
	}
	if _, err := g.providers.Get(providerID); err != nil {
		return nil, err
	}

	mediaNote := prompts.MediaNote(campaign.Media)
	results := make([]core.GeneratedContent, 0, len(requestedFormats))

	for _, format := range requestedFormats {
		prompt, ok := prompts.Render(format, campaign, mediaNote)
		if !ok {
			g.log.Warn("No prompt template for format, skipping", "format", format)
			continue
		}

		// Pause between calls, not before the first one.
		if len(results) > 0 {
			if err := g.sleep(ctx, g.delay); err != nil {
				return results, err
			}
		}

		g.log.Info("Generating content", "campaign", campaign.Name, "format", format, "provider", providerID)

		content, err := g.providers.Generate(ctx, providerID, prompt, provider.Options{})
		if err != nil {
			g.log.Error("Content generation failed for format", "error", err, "format", format)
			content = fmt.Sprintf("Generation failed for %s: %s", format, err.Error())
		}

		results = append(results, core.GeneratedContent{
			Format:      format,
			Content:     content,
			GeneratedAt: g.now().UTC(),
		})
	}

	g.log.Info("Multi-format generation complete", "campaign", campaign.Name, "items", len(results))
	return results, nil
}

// Strategy generates a single comprehensive marketing-strategy document. The
// whole operation fails if the one provider call fails; a partial strategy is
// not meaningful.
func (g *Generator) Strategy(ctx context.Context, campaign core.Campaign, providerID string) (string, error) {
	prompt := prompts.Strategy(campaign)

	g.log.Info("Generating marketing strategy", "campaign", campaign.Name, "provider", providerID)

	strategy, err := g.providers.Generate(ctx, providerID, prompt, provider.Options{Temperature: 0.7})
	if err != nil {
		return "", fmt.Errorf("failed to generate strategy: %w", err)
	}
	return strategy, nil
}

// Ideas generates a ranked list of viral campaign concepts. The prompt elicits
// a JSON array; the response is fence-stripped, parsed, and normalized. Rank
// follows the model's array order.
func (g *Generator) Ideas(ctx context.Context, brief core.IdeasBrief, providerID string) ([]core.ViralIdea, error) {
	if brief.NumberOfIdeas <= 0 {
		brief.NumberOfIdeas = DefaultIdeasCount
	}
	if brief.Platform == "" {
		brief.Platform = "tiktok"
	}

	prompt := prompts.ViralIdeas(brief)

	g.log.Info("Generating viral ideas", "brand", brief.BrandName, "provider", providerID, "count", brief.NumberOfIdeas)

	raw, err := g.providers.Generate(ctx, providerID, prompt, provider.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to generate ideas: %w", err)
	}

	ideas, err := normalize.Ideas(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ideas response: %w", err)
	}
	return ideas, nil
}

// EnhanceIdea generates a shot-by-shot production breakdown for one idea.
func (g *Generator) EnhanceIdea(ctx context.Context, idea core.ViralIdea, providerID string) (core.IdeaBreakdown, error) {
	prompt := prompts.EnhanceIdea(idea)

	raw, err := g.providers.Generate(ctx, providerID, prompt, provider.Options{})
	if err != nil {
		return core.IdeaBreakdown{}, fmt.Errorf("failed to enhance idea: %w", err)
	}

	breakdown, err := normalize.Breakdown(raw)
	if err != nil {
		return core.IdeaBreakdown{}, fmt.Errorf("failed to parse enhancement response: %w", err)
	}
	return breakdown, nil
}
