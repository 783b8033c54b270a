package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/mash/gridhints/hints"
	"gopkg.in/yaml.v3"
)

const configEnv = "GRIDHINTS_CONFIG"

// Config is the layout and picker configuration loaded from config.yaml.
type Config struct {
	Separator     string `yaml:"separator"`
	Columns       int    `yaml:"columns"`
	SeparatorSkip int    `yaml:"separator_skip"`
	SuffixSkip    int    `yaml:"suffix_skip"`
	Action        string `yaml:"action"`     // open | copy | print
	Opener        string `yaml:"opener"`     // command line; empty means the system default
	Alphabet      string `yaml:"alphabet"`   // label characters for pick
	Terminator    string `yaml:"terminator"` // st | bel
}

func defaultConfig() Config {
	opts := hints.DefaultOptions()
	return Config{
		Separator:     string(opts.Separator),
		SeparatorSkip: opts.SeparatorSkip,
		SuffixSkip:    opts.SuffixSkip,
		Action:        "open",
		Alphabet:      "asdfghjklqwertyuiopzxcvbnm",
		Terminator:    "st",
	}
}

// configPath returns the config file location. explicit is true when the
// user named the file, in which case it must exist.
func configPath(flag string) (path string, explicit bool, err error) {
	if flag != "" {
		return flag, true, nil
	}
	if env := os.Getenv(configEnv); env != "" {
		return env, true, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false, fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "gridhints", "config.yaml"), false, nil
}

// loadConfig reads path over the defaults. Keys absent from the file keep
// their default values.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	if c.Columns < 0 {
		return fmt.Errorf("columns must not be negative, got %d", c.Columns)
	}
	if c.SeparatorSkip < 0 {
		return fmt.Errorf("separator_skip must not be negative, got %d", c.SeparatorSkip)
	}
	if c.SuffixSkip < 0 {
		return fmt.Errorf("suffix_skip must not be negative, got %d", c.SuffixSkip)
	}
	switch c.Action {
	case "open", "copy", "print":
	default:
		return fmt.Errorf("unknown action %q (want open, copy or print)", c.Action)
	}
	switch c.Terminator {
	case "st", "bel":
	default:
		return fmt.Errorf("unknown terminator %q (want st or bel)", c.Terminator)
	}
	seen := make(map[rune]bool)
	for _, r := range c.Alphabet {
		if seen[r] {
			return fmt.Errorf("alphabet repeats %q", r)
		}
		seen[r] = true
	}
	if len(seen) < 2 {
		return fmt.Errorf("alphabet needs at least two characters, got %q", c.Alphabet)
	}
	return nil
}

func (c Config) options() hints.Options {
	sep, _ := utf8.DecodeRuneInString(c.Separator)
	return hints.Options{
		Separator:     sep,
		Columns:       c.Columns,
		SeparatorSkip: c.SeparatorSkip,
		SuffixSkip:    c.SuffixSkip,
	}
}
