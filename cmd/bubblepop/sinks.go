package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/telemetry"
)

var sinksCmd = &cobra.Command{
	Use:   "sinks",
	Short: "List telemetry sinks",
	Long: `Display the sinks accepted by --telemetry.

Examples:
  bubblepop sinks`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("Telemetry sinks:")
		fmt.Println()
		for _, s := range telemetry.List() {
			fmt.Printf("  %-8s  %s\n", s.Name, s.Description)
		}
		fmt.Println()
		fmt.Println("Use: bubblepop play --telemetry <sink>")
	},
}
