package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adforge/internal/config"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adforge",
		Short: "adforge generates marketing content, strategies, and viral ideas with LLM providers.",
		Long: `adforge turns a campaign brief into platform-ready marketing content.

It builds one tailored prompt per requested output format (TikTok scripts,
email copy, banner ads, and more), dispatches them to the selected AI
provider (Claude, OpenAI, or Gemini), and assembles the responses into
structured results. It can also produce full marketing strategies, ranked
viral campaign ideas, and virality scores for scripts.`,
	}

	// Initialize configuration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.adforge.yaml)")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewStrategyCmd())
	rootCmd.AddCommand(NewIdeasCmd())
	rootCmd.AddCommand(NewScoreCmd())
	rootCmd.AddCommand(NewFormatsCmd())
	rootCmd.AddCommand(NewMigrateCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}
