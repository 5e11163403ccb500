package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"adforge/internal/config"
	"adforge/internal/virality"
)

// NewScoreCmd creates the score command for virality analysis
func NewScoreCmd() *cobra.Command {
	var (
		script     string
		scriptFile string
		hook       string
		platform   string
		audience   string
		emotion    string
		explain    bool
		providerID string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a script for virality potential",
		Long: `Analyze a marketing script and predict its virality.

The analysis returns an overall 0-100 score, predicted views and shares,
five sub-feature scores, and concrete optimization tips.

Examples:
  adforge score --script "POV: you finally found a serum that works..." \
    --hook "Wait for the glow up" --platform tiktok

  # Read the script from a file and add a prose explanation
  adforge score --script-file ./script.txt --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scriptFile != "" {
				data, err := os.ReadFile(scriptFile)
				if err != nil {
					return fmt.Errorf("failed to read script file: %w", err)
				}
				script = string(data)
			}
			if strings.TrimSpace(script) == "" {
				return fmt.Errorf("--script or --script-file is required")
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			_, _, scorer := buildPipeline(cfg)

			payload, err := scorer.Score(cmd.Context(), virality.Request{
				Script:          script,
				Hook:            hook,
				Platform:        platform,
				AudienceContext: audience,
				Emotion:         emotion,
			}, providerID)
			if err != nil {
				return err
			}

			fmt.Printf("Virality score:   %d/100\n", payload.ViralityScore)
			fmt.Printf("Predicted views:  %d\n", payload.PredictedViews)
			fmt.Printf("Predicted shares: %d\n", payload.PredictedShares)
			fmt.Printf("Features: hook=%.1f emotion=%.1f share=%.1f meme=%.1f fit=%.1f\n",
				payload.Features.HookStrength, payload.Features.EmotionCurve,
				payload.Features.Shareability, payload.Features.MemePotential,
				payload.Features.PlatformFit)
			for _, tip := range payload.OptimizationTips {
				fmt.Printf("  tip: %s\n", tip)
			}

			if explain {
				explanation, err := scorer.Explain(cmd.Context(), payload, providerID)
				if err != nil {
					return err
				}
				fmt.Printf("\n%s\n", explanation)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&script, "script", "", "script text to score")
	cmd.Flags().StringVar(&scriptFile, "script-file", "", "file containing the script to score")
	cmd.Flags().StringVar(&hook, "hook", "", "opening hook of the script")
	cmd.Flags().StringVar(&platform, "platform", "tiktok", "target platform")
	cmd.Flags().StringVar(&audience, "audience", "", "audience context")
	cmd.Flags().StringVar(&emotion, "emotion", "", "intended emotion")
	cmd.Flags().BoolVar(&explain, "explain", false, "also generate a prose explanation of the score")
	cmd.Flags().StringVar(&providerID, "provider", "claude", "AI provider: claude, openai, or gemini")

	return cmd
}
