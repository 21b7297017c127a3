package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/iw2rmb/emojicode/emoji"
	"github.com/iw2rmb/emojicode/internal/config"
	"github.com/iw2rmb/emojicode/internal/logging"
)

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupCLI loads configuration, logs to stderr and loads the dataset.
func setupCLI(c *cli.Context) (*config.Config, *emoji.Table, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Setup(cfg.Log.Level, os.Stderr); err != nil {
		return nil, nil, err
	}
	table, err := loadTable(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, table, nil
}

func loadTable(cfg *config.Config) (*emoji.Table, error) {
	if cfg.Dataset.Path == "" {
		t := emoji.Default()
		log.Debug().Int("records", t.Len()).Msg("Using embedded emoji dataset")
		return t, nil
	}

	t, err := emoji.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	log.Debug().
		Str("path", cfg.Dataset.Path).
		Int("records", t.Len()).
		Msg("Loaded emoji dataset")
	return t, nil
}
