package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"adforge/internal/formats"
)

// NewFormatsCmd creates the formats command listing supported output formats
func NewFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range formats.All() {
				fmt.Printf("%-20s %-25s %s\n", f, formats.Label(f), formats.Description(f))
			}
		},
	}
}
