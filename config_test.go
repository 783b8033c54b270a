package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mash/gridhints/hints"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		modify  func(*Config)
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			modify:  func(*Config) {},
		},
		{
			name:    "partial file",
			content: "columns: 120\naction: copy\n",
			modify: func(c *Config) {
				c.Columns = 120
				c.Action = "copy"
			},
		},
		{
			name:    "explicit zero skips",
			content: "separator_skip: 0\nsuffix_skip: 0\n",
			modify: func(c *Config) {
				c.SeparatorSkip = 0
				c.SuffixSkip = 0
			},
		},
		{
			name:    "ascii layout",
			content: "separator: \"|\"\nterminator: bel\nalphabet: jkl\nopener: firefox --new-tab\n",
			modify: func(c *Config) {
				c.Separator = "|"
				c.Terminator = "bel"
				c.Alphabet = "jkl"
				c.Opener = "firefox --new-tab"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadConfig(writeConfig(t, tt.content), true)
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			want := defaultConfig()
			tt.modify(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("loadConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("loadConfig(default path) error = %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	if _, err := loadConfig(path, true); err == nil {
		t.Error("loadConfig(explicit path) error = nil, want error for missing file")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "columns: [1, 2\n"), true)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("loadConfig() error = %v, want parsing error", err)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv(configEnv, "/etc/gridhints.yaml")

	path, explicit, err := configPath("/tmp/flag.yaml")
	if err != nil || path != "/tmp/flag.yaml" || !explicit {
		t.Errorf("configPath(flag) = %q, %v, %v", path, explicit, err)
	}

	path, explicit, err = configPath("")
	if err != nil || path != "/etc/gridhints.yaml" || !explicit {
		t.Errorf("configPath(env) = %q, %v, %v", path, explicit, err)
	}

	t.Setenv(configEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.config")
	t.Setenv("HOME", "/home/u")
	path, explicit, err = configPath("")
	if err != nil {
		t.Fatalf("configPath() error = %v", err)
	}
	if explicit || !strings.HasSuffix(path, filepath.Join("gridhints", "config.yaml")) {
		t.Errorf("configPath(default) = %q, %v", path, explicit)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"gating disabled", func(c *Config) { c.SeparatorSkip = 0 }, ""},
		{"empty separator", func(c *Config) { c.Separator = "" }, "separator"},
		{"long separator", func(c *Config) { c.Separator = "||" }, "separator"},
		{"negative columns", func(c *Config) { c.Columns = -1 }, "columns"},
		{"negative separator skip", func(c *Config) { c.SeparatorSkip = -1 }, "separator_skip"},
		{"negative suffix skip", func(c *Config) { c.SuffixSkip = -2 }, "suffix_skip"},
		{"unknown action", func(c *Config) { c.Action = "mail" }, "action"},
		{"unknown terminator", func(c *Config) { c.Terminator = "esc" }, "terminator"},
		{"one letter alphabet", func(c *Config) { c.Alphabet = "a" }, "alphabet"},
		{"repeated alphabet", func(c *Config) { c.Alphabet = "abca" }, "alphabet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	if diff := cmp.Diff(hints.DefaultOptions(), defaultConfig().options()); diff != "" {
		t.Errorf("default options mismatch (-want +got):\n%s", diff)
	}

	cfg := defaultConfig()
	cfg.Separator = "|"
	cfg.Columns = 100
	want := hints.Options{Separator: '|', Columns: 100, SeparatorSkip: 3, SuffixSkip: 1}
	if diff := cmp.Diff(want, cfg.options()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}
