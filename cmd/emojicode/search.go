package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// SearchCommand returns the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "List emoji whose shortcode starts with PREFIX",
		ArgsUsage: "[PREFIX]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Print at most `N` results (0 for all)",
			},
		},
		Action: runSearch,
	}
}

func runSearch(c *cli.Context) error {
	if c.NArg() > 1 {
		return fmt.Errorf("search takes at most one PREFIX argument")
	}
	_, table, err := setupCLI(c)
	if err != nil {
		return err
	}

	records := table.SearchPrefix(strings.TrimPrefix(c.Args().First(), ":"))
	if limit := c.Int("limit"); limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	for _, r := range records {
		fmt.Fprintf(c.App.Writer, "%s\t:%s:\t%s\n", r.Unicode, strings.Join(r.Shortcodes, ": :"), r.Label)
	}
	return nil
}
