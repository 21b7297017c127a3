package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Editor.ReplaceOnType || !cfg.Editor.PreviewShortcodes || !cfg.Editor.LineNumbers || !cfg.Editor.InlineSuggestion {
		t.Fatalf("editor defaults=%+v", cfg.Editor)
	}
	if cfg.Completion.MaxRows != 8 || cfg.Completion.MaxWidth != 48 || cfg.Completion.MinQuery != 1 {
		t.Fatalf("completion defaults=%+v", cfg.Completion)
	}
	if cfg.Log.Level != "info" || cfg.Dataset.Path != "" {
		t.Fatalf("defaults: log=%+v dataset=%+v", cfg.Log, cfg.Dataset)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(defaults): %v", err)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "emojicode.toml", `
[editor]
replace_on_type = false

[completion]
max_rows = 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Editor.ReplaceOnType {
		t.Fatalf("replace_on_type=true, want false from file")
	}
	if cfg.Completion.MaxRows != 4 {
		t.Fatalf("max_rows=%d, want 4", cfg.Completion.MaxRows)
	}
	if cfg.Completion.MaxWidth != 48 {
		t.Fatalf("max_width=%d, want default 48", cfg.Completion.MaxWidth)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "emojicode.toml", "[log]\nlevel = \"warn\"\n")
	t.Setenv("EMOJICODE_LOG_LEVEL", "debug")
	t.Setenv("EMOJICODE_COMPLETION_MIN_QUERY", "2")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log.level=%q, want debug", cfg.Log.Level)
	}
	if cfg.Completion.MinQuery != 2 {
		t.Fatalf("min_query=%d, want 2", cfg.Completion.MinQuery)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadConfig_MalformedDefaultFileWarns(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	if err := os.WriteFile("emojicode.toml", []byte("[editor\nline_numbers = "), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Completion.MaxRows != 8 {
		t.Fatalf("max_rows=%d, want default 8", cfg.Completion.MaxRows)
	}
	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "emojicode.toml") {
		t.Fatalf("log output=%q, want a warning naming the file", out)
	}
}

func TestInitConfig_WritesLoadableSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojicode.toml")
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(sample): %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(sample): %v", err)
	}

	if err := InitConfig(path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("second InitConfig err=%v, want already exists", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "rows", mutate: func(c *Config) { c.Completion.MaxRows = 0 }, wantErr: "max_rows"},
		{name: "width", mutate: func(c *Config) { c.Completion.MaxWidth = 3 }, wantErr: "max_width"},
		{name: "min query", mutate: func(c *Config) { c.Completion.MinQuery = -1 }, wantErr: "min_query"},
		{name: "level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
		{name: "dataset", mutate: func(c *Config) { c.Dataset.Path = "/does/not/exist.json" }, wantErr: "dataset.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Completion.MaxRows = 8
			cfg.Completion.MaxWidth = 48
			cfg.Completion.MinQuery = 1
			cfg.Log.Level = "info"
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate err=%v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
