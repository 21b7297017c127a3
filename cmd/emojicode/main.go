package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/iw2rmb/emojicode"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "emojicode",
		Usage:   "Resolve :emoji: shortcodes in text and in a terminal editor",
		Version: emojicode.Version(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE` (default: ./emojicode.toml, ~/.emojicode.toml)",
			},
		},
		Commands: []*cli.Command{
			EditCommand(),
			ResolveCommand(),
			SearchCommand(),
			MatchCommand(),
			ConfigCommand(),
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
