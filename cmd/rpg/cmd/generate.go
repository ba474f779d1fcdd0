package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"rpg/internal/history"
	"rpg/internal/passgen"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var (
	genLength   int
	genUpper    bool
	genLower    bool
	genNumbers  bool
	genSymbols  bool
	genExclude  string
	genEnforce  bool
	genCount    int
	genStrength bool
	genCSV      string
	genSeal     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print random passwords",
	Long: `Generates passwords without starting the terminal UI.

Settings default to the config file. Passing any class flag replaces the
configured classes with exactly the flags given.

Examples:
  rpg generate
  rpg generate -l 24 -U -L -N --enforce
  rpg generate -c 5 --strength -x 'O0Il1'
  RPG_PASSPHRASE=... rpg generate -c 10 --csv out.csv --seal`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&genLength, "length", "l", 16, "password length")
	f.BoolVarP(&genUpper, "upper", "U", false, "include uppercase letters (A-Z)")
	f.BoolVarP(&genLower, "lower", "L", false, "include lowercase letters (a-z)")
	f.BoolVarP(&genNumbers, "numbers", "N", false, "include digits (0-9)")
	f.BoolVarP(&genSymbols, "symbols", "S", false, "include symbols")
	f.StringVarP(&genExclude, "exclude", "x", "", "characters to leave out")
	f.BoolVar(&genEnforce, "enforce", true, "require at least one character of every selected class")
	f.IntVarP(&genCount, "count", "c", 1, "number of passwords")
	f.BoolVar(&genStrength, "strength", false, "print the strength rating next to each password")
	f.StringVar(&genCSV, "csv", "", "also export the generated passwords as CSV to this file")
	f.BoolVar(&genSeal, "seal", false, "encrypt the CSV export with $"+passphraseEnv)
}

// generationConfig merges the config file with the flags that were set.
func generationConfig(cmd *cobra.Command) (passgen.Config, error) {
	cfg := appCfg.Generation()
	flags := cmd.Flags()

	if flags.Changed("length") {
		cfg.Length = genLength
	}
	if flags.Changed("upper") || flags.Changed("lower") || flags.Changed("numbers") || flags.Changed("symbols") {
		cfg.Classes = 0
		for c, on := range map[passgen.Class]bool{
			passgen.Uppercase: genUpper,
			passgen.Lowercase: genLower,
			passgen.Digits:    genNumbers,
			passgen.Symbols:   genSymbols,
		} {
			if on {
				cfg.Classes = cfg.Classes.With(c)
			}
		}
	}
	if flags.Changed("exclude") {
		cfg.Exclude = genExclude
	}
	if flags.Changed("enforce") {
		cfg.EnforceDiversity = genEnforce
	}
	if genCount < 1 {
		return cfg, fmt.Errorf("--count must be at least 1, got %d", genCount)
	}
	if genSeal && genCSV == "" {
		return cfg, errors.New("--seal requires --csv")
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := generationConfig(cmd)
	if err != nil {
		return err
	}
	log := history.New(max(genCount, appCfg.HistoryLimit))
	if err := generate(cmd.OutOrStdout(), cfg, genCount, genStrength, log); err != nil {
		return err
	}

	if genCSV == "" {
		return nil
	}
	if genSeal {
		passphrase := os.Getenv(passphraseEnv)
		if passphrase == "" {
			return fmt.Errorf("--seal needs the passphrase in $%s", passphraseEnv)
		}
		err = log.ExportSealed(genCSV, passphrase)
	} else {
		err = log.Export(genCSV)
	}
	if err != nil {
		return fmt.Errorf("exporting history: %w", err)
	}
	glog.Infof("exported %d passwords to %s", log.Len(), genCSV)
	return nil
}

// generate writes count passwords to w, one per line, recording each in log.
func generate(w io.Writer, cfg passgen.Config, count int, withStrength bool, log *history.Log) error {
	summary := cfg.Summary()
	for i := 0; i < count; i++ {
		pw, err := passgen.Generate(cfg)
		if err != nil {
			return err
		}
		log.Record(pw.Value, summary)
		if withStrength {
			fmt.Fprintf(w, "%s\t%s (%d)\n", pw.Value, pw.Strength.Label, pw.Strength.Score)
		} else {
			fmt.Fprintln(w, pw.Value)
		}
	}
	return nil
}
