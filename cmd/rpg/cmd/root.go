package cmd

import (
	"flag"
	"fmt"
	"os"

	"rpg/internal/config"
	"rpg/internal/history"
	"rpg/internal/passgen"
	"rpg/internal/ui"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// passphraseEnv holds the passphrase for sealed exports.
const passphraseEnv = "RPG_PASSPHRASE"

var (
	cfgFile string
	appCfg  config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "rpg",
	Short: "Random password generator",
	Long: `rpg generates random passwords from selectable character classes
(uppercase, lowercase, digits, symbols) with optional exclusions and
enforced diversity, and rates their strength.

Without a subcommand the terminal UI is started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrInit(cfgFile)
		if err != nil {
			return err
		}
		appCfg = cfg
		glog.V(1).Infof("config loaded: length=%d classes=%v", cfg.Length, cfg.Classes)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := ui.NewApp(appCfg, history.New(appCfg.HistoryLimit))
		if err != nil {
			return err
		}
		return h.Run()
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.rpg/config.toml)")
	// glog registers its flags on the standard flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	_ = flag.CommandLine.Parse(nil)
}

// printError reports err on stderr, using the user-facing wording for
// generation errors.
func printError(err error) {
	glog.Errorf("%v", err)
	fmt.Fprintf(os.Stderr, "error: %s\n", passgen.Message(err))
}
