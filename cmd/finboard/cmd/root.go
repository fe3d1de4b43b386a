package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finboard",
	Short: "A terminal dashboard for commodities, indices, forex, treasuries and crypto",
	Long: `Finboard periodically refreshes quotes for a fixed catalog of financial
instruments and renders them as terminal tables with percent change from
the previous close.

It provides:
  - Concurrent, batched, timeout-bounded quote fetching
  - A previous-close cache that persists across refresh cycles
  - Group-by-group table updates with directional coloring
  - Optional CSV/SQLite journaling of per-cycle stats`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
