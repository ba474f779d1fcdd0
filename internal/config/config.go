package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rpg/internal/passgen"

	"github.com/BurntSushi/toml"
)

type AppConfig struct {
	Length                int      `toml:"length"`
	Classes               []string `toml:"classes"`
	Exclude               string   `toml:"exclude"`
	EnforceDiversity      bool     `toml:"enforce_diversity"`
	HistoryLimit          int      `toml:"history_limit"`
	ClipboardClearSeconds int      `toml:"clipboard_clear_seconds"`
	ExportDir             string   `toml:"export_dir"`
}

func Default() AppConfig {
	return AppConfig{
		Length:                16,
		Classes:               []string{"uppercase", "lowercase", "digits", "symbols"},
		EnforceDiversity:      true,
		HistoryLimit:          500,
		ClipboardClearSeconds: 30,
		ExportDir:             "~",
	}
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// DefaultPath is ~/.rpg/config.toml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".rpg", "config.toml")
}

// Load reads path, filling keys the file leaves out with defaults.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	md, err := toml.DecodeFile(ExpandPath(path), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	if cfg.Length < 1 {
		return Default(), fmt.Errorf("config length must be at least 1, got %d", cfg.Length)
	}
	if _, err := cfg.ClassSet(); err != nil {
		return Default(), err
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = Default().HistoryLimit
	}
	if cfg.ClipboardClearSeconds < 0 {
		cfg.ClipboardClearSeconds = 0
	}
	return cfg, nil
}

// LoadOrInit loads path, writing the defaults first when the file does not
// exist yet.
func LoadOrInit(path string) (AppConfig, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(ExpandPath(path)); os.IsNotExist(err) {
		cfg := Default()
		return cfg, Save(path, cfg)
	}
	return Load(path)
}

func Save(path string, cfg AppConfig) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}

// ClassSet parses the configured class names.
func (c AppConfig) ClassSet() (passgen.ClassSet, error) {
	var set passgen.ClassSet
	for _, name := range c.Classes {
		class, err := passgen.ParseClass(name)
		if err != nil {
			return 0, fmt.Errorf("config classes: %w", err)
		}
		set = set.With(class)
	}
	return set, nil
}

// Generation returns the generator settings described by the config.
func (c AppConfig) Generation() passgen.Config {
	set, _ := c.ClassSet()
	return passgen.Config{
		Length:           c.Length,
		Classes:          set,
		Exclude:          c.Exclude,
		EnforceDiversity: c.EnforceDiversity,
	}
}

// ClassNames converts a set back to the names used in the config file.
func ClassNames(set passgen.ClassSet) []string {
	names := []string{}
	for _, c := range set.Classes() {
		names = append(names, strings.ToLower(c.String()))
	}
	return names
}
