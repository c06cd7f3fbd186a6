// Package cli implements the Bloom command-line interface using Cobra.
// Each subcommand is a thin wrapper over the wellness engine facade.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bloom",
	Short: "Bloom - personal wellness tracking and analytics",
	Long: `Bloom tracks your moods, journal entries, and exercise sessions,
and turns them into streaks, badges, and mood pattern insights.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
