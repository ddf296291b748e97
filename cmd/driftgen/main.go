// Package main provides the entry point for the driftgen dataset
// generation tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftdata/driftgen/version"
)

// Main entry point for the driftgen tool
func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "driftgen",
		Short: "Driftgen generates paired datasets with controlled drift",
		Long: `Driftgen builds a source table from a declarative column specification
and derives a deliberately imperfect target table from it: renamed columns,
reordered columns, added or removed rows, numeric jitter, date-format drift
and corrupted geo coordinates. The pair exercises data-quality and
reconciliation tooling.`,
	}

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of driftgen",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("driftgen v%s (%s)\n", version.GetVersion(), version.GetBuildDate())
		},
	})

	// Add subcommands
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newServeCommand())

	// Execute the command
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
