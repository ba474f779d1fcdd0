package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"rpg/internal/config"
	"rpg/internal/crypto"
	"rpg/internal/history"
	"rpg/internal/passgen"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseGenerateFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	addGenerateFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestGenerationConfigDefaultsToConfigFile(t *testing.T) {
	appCfg = config.Default()
	appCfg.Length = 20
	appCfg.Exclude = "O0"

	cfg, err := generationConfig(parseGenerateFlags(t))
	require.NoError(t, err)
	assert.Equal(t, passgen.Config{Length: 20, Classes: passgen.AllClasses, Exclude: "O0", EnforceDiversity: true}, cfg)
}

func TestGenerationConfigFlagsOverride(t *testing.T) {
	appCfg = config.Default()

	cfg, err := generationConfig(parseGenerateFlags(t, "-l", "8", "-U", "-N", "-x", "AB", "--enforce=false"))
	require.NoError(t, err)
	assert.Equal(t, passgen.Config{
		Length:  8,
		Classes: passgen.NewClassSet(passgen.Uppercase, passgen.Digits),
		Exclude: "AB",
	}, cfg)
}

func TestGenerationConfigSealNeedsCSV(t *testing.T) {
	appCfg = config.Default()
	_, err := generationConfig(parseGenerateFlags(t, "--seal"))
	assert.Error(t, err)
}

func TestGenerationConfigRejectsBadCount(t *testing.T) {
	appCfg = config.Default()
	for _, count := range []string{"0", "-3"} {
		_, err := generationConfig(parseGenerateFlags(t, "--count", count))
		assert.ErrorContains(t, err, "--count", "count %s", count)
	}

	_, err := generationConfig(parseGenerateFlags(t, "-c", "2"))
	assert.NoError(t, err)
}

func TestGenerateWritesPasswords(t *testing.T) {
	var out bytes.Buffer
	log := history.New(10)
	cfg := passgen.Config{Length: 12, Classes: passgen.AllClasses, EnforceDiversity: true}

	require.NoError(t, generate(&out, cfg, 3, false, log))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 12, utf8.RuneCountInString(line))
	}
	assert.Equal(t, 3, log.Len())
	assert.Equal(t, cfg.Summary(), log.Entries()[0].Settings)
}

func TestGenerateWithStrength(t *testing.T) {
	var out bytes.Buffer
	cfg := passgen.Config{Length: 12, Classes: passgen.AllClasses, EnforceDiversity: true}

	require.NoError(t, generate(&out, cfg, 1, true, history.New(1)))
	assert.True(t, strings.HasSuffix(out.String(), "\tVery Strong (95)\n"), out.String())
}

func TestGenerateReportsErrors(t *testing.T) {
	var out bytes.Buffer
	cfg := passgen.Config{Length: 8, Classes: passgen.NewClassSet(passgen.Symbols), Exclude: passgen.SymbolChars}

	err := generate(&out, cfg, 2, false, history.New(2))
	assert.ErrorIs(t, err, passgen.ErrEmptyPool)
	assert.Zero(t, out.Len())
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStrengthCommand(t *testing.T) {
	out, err := executeRoot(t, "strength", "aA1!aA1!")
	require.NoError(t, err)
	assert.Equal(t, "Very Strong (95)\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rpg "+Version)
}

func TestUnsealCommand(t *testing.T) {
	dir := t.TempDir()
	log := history.New(2)
	log.Record("pw123", "len=5")
	path := filepath.Join(dir, "h.csv")
	require.NoError(t, log.ExportSealed(path, "hunter2"))

	t.Setenv(passphraseEnv, "hunter2")
	out, err := executeRoot(t, "unseal", path)
	require.NoError(t, err)
	assert.Contains(t, out, "timestamp,password,settings\n")
	assert.Contains(t, out, ",pw123,len=5\n")

	plain := filepath.Join(dir, "plain.csv")
	require.NoError(t, os.WriteFile(plain, []byte("timestamp,password,settings\n"), 0600))
	_, err = executeRoot(t, "unseal", plain)
	assert.ErrorIs(t, err, crypto.ErrNotSealed)
}
