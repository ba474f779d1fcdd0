package cmd

import (
	"fmt"
	"os"

	"rpg/internal/crypto"

	"github.com/spf13/cobra"
)

var unsealCmd = &cobra.Command{
	Use:   "unseal <file>",
	Short: "Decrypt a sealed history export to stdout",
	Long: `Decrypts a history export written with a passphrase. The passphrase
is read from $` + passphraseEnv + `.`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if !crypto.IsSealed(data) {
			return fmt.Errorf("%s: %w", args[0], crypto.ErrNotSealed)
		}
		plain, err := crypto.OpenExport(os.Getenv(passphraseEnv), data)
		if err != nil {
			return err
		}
		defer crypto.WipeBytes(plain)
		_, err = cmd.OutOrStdout().Write(plain)
		return err
	},
}

func init() {
	rootCmd.AddCommand(unsealCmd)
}
