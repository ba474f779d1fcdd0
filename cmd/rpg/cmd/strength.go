package cmd

import (
	"fmt"

	"rpg/internal/passgen"

	"github.com/spf13/cobra"
)

var strengthCmd = &cobra.Command{
	Use:   "strength <password>",
	Short: "Rate the strength of a password",
	Long: `Rates a password from its character variety and length.

The rating is a coarse heuristic, not an entropy estimate.`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		s := passgen.EstimateStrength(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", s.Label, s.Score)
	},
}

func init() {
	rootCmd.AddCommand(strengthCmd)
}
