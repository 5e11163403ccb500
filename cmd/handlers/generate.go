package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"adforge/internal/config"
	"adforge/internal/core"
	"adforge/internal/formats"
)

// NewGenerateCmd creates the generate command for multi-format content generation
func NewGenerateCmd() *cobra.Command {
	var (
		name       string
		product    string
		audience   string
		emotion    string
		formatList []string
		providerID string
		allFormats bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate marketing content for one or more output formats",
		Long: `Generate platform-ready marketing content from a campaign brief.

Each requested format gets its own tailored prompt and its own provider
call; formats are processed sequentially with a short pause between calls.

Examples:
  # Two formats via Claude
  adforge generate --name "Glow Serum" --product "Vitamin C face serum" \
    --formats tiktok_script,instagram_caption

  # Everything, via Gemini
  adforge generate --name "Glow Serum" --product "Vitamin C face serum" \
    --all --provider gemini`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if product == "" {
				return fmt.Errorf("--product is required")
			}
			requested := formatList
			if allFormats {
				requested = nil
				for _, f := range formats.All() {
					requested = append(requested, string(f))
				}
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
				OutputFormats:      requested,
				AIProvider:         providerID,
			}

			items, err := generator.MultiFormat(cmd.Context(), campaign, requested, providerID)
			if err != nil {
				return err
			}

			for _, item := range items {
				fmt.Printf("=== %s ===\n\n%s\n\n", formats.Label(formats.Format(item.Format)), strings.TrimSpace(item.Content))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "campaign or brand name")
	cmd.Flags().StringVar(&product, "product", "", "product description (required)")
	cmd.Flags().StringVar(&audience, "audience", "", "target audience description")
	cmd.Flags().StringVar(&emotion, "emotion", "", "emotion the content should evoke")
	cmd.Flags().StringSliceVar(&formatList, "formats", nil, "comma-separated output format ids")
	cmd.Flags().BoolVar(&allFormats, "all", false, "generate every supported format")
	cmd.Flags().StringVar(&providerID, "provider", "claude", "AI provider: claude, openai, or gemini")

	return cmd
}
