package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"adforge/internal/config"
	"adforge/internal/core"
)

// NewStrategyCmd creates the strategy command
func NewStrategyCmd() *cobra.Command {
	var (
		name       string
		product    string
		audience   string
		emotion    string
		providerID string
	)

	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Generate a complete marketing strategy document",
		Long: `Generate a comprehensive marketing strategy for a campaign.

The strategy covers positioning, content pillars, a posting schedule,
budget allocation, and KPIs in one long-form document.

Example:
  adforge strategy --name "Glow Serum" --product "Vitamin C face serum" \
    --audience "women 25-40 interested in skincare"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if product == "" {
				return fmt.Errorf("--product is required")
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			_, generator, _ := buildPipeline(cfg)

			campaign := core.Campaign{
				Name:               name,
				ProductDescription: product,
				TargetAudience:     audience,
				DesiredEmotion:     emotion,
				AIProvider:         providerID,
			}

			strategy, err := generator.Strategy(cmd.Context(), campaign, providerID)
			if err != nil {
				return err
			}

			fmt.Println(strategy)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "campaign or brand name")
	cmd.Flags().StringVar(&product, "product", "", "product description (required)")
	cmd.Flags().StringVar(&audience, "audience", "", "target audience description")
	cmd.Flags().StringVar(&emotion, "emotion", "", "emotion the content should evoke")
	cmd.Flags().StringVar(&providerID, "provider", "claude", "AI provider: claude, openai, or gemini")

	return cmd
}
