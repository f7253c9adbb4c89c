package cmd

import (
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Resolve and store thermodynamic states",
	Long: `Resolve a thermodynamic state from partial inputs and store it in
the session for process evaluation.

Subcommands:
  water  - Resolve a water/steam state from T, P and quality
  gas    - Resolve an ideal-gas state from P, v and gas constants

Resolved states are written to the session file under the chosen stage
("state1" or "state2"); the latest submission for a stage replaces the
previous one.`,
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
