package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"adforge/internal/config"
	"adforge/internal/core"
)

// NewIdeasCmd creates the ideas command for viral concept generation
func NewIdeasCmd() *cobra.Command {
	var (
		brand      string
		product    string
		audience   string
		emotion    string
		budget     string
		platform   string
		count      int
		providerID string
	)

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Generate ranked viral campaign ideas",
		Long: `Generate a ranked list of viral campaign concepts for a brand.

Each idea comes with a hook, a full 30-60 second script, an explanation of
why it could go viral, and an estimated virality score.

Example:
  adforge ideas --brand "Glow Serum" --product "Vitamin C face serum" \
    --platform tiktok --count 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if product == "" {
				return fmt.Errorf("--product is required")
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			_, generator, _ := buildPipeline(cfg)

			if count <= 0 {
				count = cfg.Generation.NumberOfIdeas
			}

			brief := core.IdeasBrief{
				BrandName:          brand,
				ProductDescription: product,
				TargetAudience:     audience,
				DesiredEmotion:     emotion,
				BudgetRange:        budget,
				Platform:           platform,
				NumberOfIdeas:      count,
			}

			ideas, err := generator.Ideas(cmd.Context(), brief, providerID)
			if err != nil {
				return err
			}

			for _, idea := range ideas {
				fmt.Printf("#%d %s (score %d)\n", idea.Rank, idea.ConceptTitle, idea.EstimatedScore)
				fmt.Printf("  Hook: %s\n", idea.Hook)
				if idea.ViralExplanation != "" {
					fmt.Printf("  Why:  %s\n", idea.ViralExplanation)
				}
				if idea.FullScript != "" {
					fmt.Printf("  Script:\n    %s\n", strings.ReplaceAll(strings.TrimSpace(idea.FullScript), "\n", "\n    "))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&product, "product", "", "product description (required)")
	cmd.Flags().StringVar(&audience, "audience", "", "target audience description")
	cmd.Flags().StringVar(&emotion, "emotion", "", "emotion the ideas should evoke")
	cmd.Flags().StringVar(&budget, "budget", "", "budget range, e.g. \"$500-$2000\"")
	cmd.Flags().StringVar(&platform, "platform", "tiktok", "target platform")
	cmd.Flags().IntVar(&count, "count", 0, "number of ideas (default from config: 10)")
	cmd.Flags().StringVar(&providerID, "provider", "claude", "AI provider: claude, openai, or gemini")

	return cmd
}
