package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const envPrefix = "EMOJICODE_"

// Config represents the application configuration
type Config struct {
	Dataset struct {
		// Path to an emoji JSON dataset; empty uses the embedded one.
		Path string `koanf:"path"`
	} `koanf:"dataset"`

	Editor struct {
		LineNumbers       bool `koanf:"line_numbers"`
		ReplaceOnType     bool `koanf:"replace_on_type"`
		PreviewShortcodes bool `koanf:"preview_shortcodes"`
		InlineSuggestion  bool `koanf:"inline_suggestion"`
	} `koanf:"editor"`

	Completion struct {
		MaxRows  int `koanf:"max_rows"`
		MaxWidth int `koanf:"max_width"`
		MinQuery int `koanf:"min_query"`
	} `koanf:"completion"`

	Log struct {
		Level string `koanf:"level"`
		File  string `koanf:"file"`
	} `koanf:"log"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"dataset.path":              "",
		"editor.line_numbers":       true,
		"editor.replace_on_type":    true,
		"editor.preview_shortcodes": true,
		"editor.inline_suggestion":  true,
		"completion.max_rows":       8,
		"completion.max_width":      48,
		"completion.min_query":      1,
		"log.level":                 "info",
		"log.file":                  "",
	}
}

// LoadConfig loads defaults, then the TOML file, then EMOJICODE_* variables.
// With an empty configPath the default locations are tried and skipped when
// missing.
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range DefaultPaths() {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Skipping unreadable config file")
				continue
			}
			break
		}
	}

	// EMOJICODE_EDITOR_LINE_NUMBERS maps to editor.line_numbers: the first
	// underscore after the prefix separates section and key.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// DefaultPaths lists the files LoadConfig tries when no path is given.
func DefaultPaths() []string {
	return []string{"./emojicode.toml", "$HOME/.emojicode.toml"}
}

const sampleConfig = `# emojicode configuration

[dataset]
# JSON array of {"hexcode","emoji","shortcodes","label"}; empty uses the
# built-in dataset.
path = ""

[editor]
line_numbers = true
replace_on_type = true
preview_shortcodes = true
inline_suggestion = true

[completion]
max_rows = 8
max_width = 48
min_query = 1

[log]
level = "info"
file = ""
`

// InitConfig writes a sample configuration file. It refuses to overwrite an
// existing one.
func InitConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}
	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	var errs []error

	if config.Completion.MaxRows < 1 {
		errs = append(errs, fmt.Errorf("completion.max_rows must be at least 1, got %d", config.Completion.MaxRows))
	}
	if config.Completion.MaxWidth < 8 {
		errs = append(errs, fmt.Errorf("completion.max_width must be at least 8, got %d", config.Completion.MaxWidth))
	}
	if config.Completion.MinQuery < 0 {
		errs = append(errs, fmt.Errorf("completion.min_query must not be negative, got %d", config.Completion.MinQuery))
	}
	if _, err := zerolog.ParseLevel(config.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if config.Dataset.Path != "" {
		if _, err := os.Stat(config.Dataset.Path); err != nil {
			errs = append(errs, fmt.Errorf("dataset.path: %w", err))
		}
	}

	return errors.Join(errs...)
}
