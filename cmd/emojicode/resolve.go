package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/iw2rmb/emojicode/shortcode"
)

// ResolveCommand returns the resolve command
func ResolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Replace every known :shortcode: with its emoji",
		ArgsUsage: "[TEXT...]",
		Description: "Joins TEXT with spaces, or reads standard input when no TEXT is given.\n" +
			"Unknown shortcodes are left as written.",
		Action: runResolve,
	}
}

func runResolve(c *cli.Context) error {
	_, table, err := setupCLI(c)
	if err != nil {
		return err
	}

	text := strings.Join(c.Args().Slice(), " ")
	if c.NArg() == 0 {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		text = string(data)
	}

	out, resolved := shortcode.NewResolver(table).ReplaceAll(text)
	for _, r := range resolved {
		log.Debug().
			Str("shortcode", r.Shortcode).
			Str("hexcode", r.Record.Hexcode).
			Int("start", r.Start).
			Int("end", r.End).
			Msg("Resolved shortcode")
	}

	if c.NArg() == 0 {
		_, err = io.WriteString(c.App.Writer, out)
	} else {
		_, err = fmt.Fprintln(c.App.Writer, out)
	}
	return err
}

// MatchCommand returns the match command
func MatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Show how text before a cursor is read: complete shortcode, open query or nothing",
		ArgsUsage: "TEXT",
		Action:    runMatch,
	}
}

func runMatch(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("match takes exactly one TEXT argument")
	}
	_, table, err := setupCLI(c)
	if err != nil {
		return err
	}

	text := c.Args().First()
	r := shortcode.NewResolver(table)
	w := c.App.Writer
	found := false

	if m, ok := shortcode.FindComplete(text); ok {
		found = true
		if res, ok := r.Resolve(text); ok {
			fmt.Fprintf(w, "complete [%d,%d) :%s: -> %s %s\n", m.Start, m.End, m.Shortcode, res.Record.Unicode, res.Record.Hexcode)
		} else {
			fmt.Fprintf(w, "complete [%d,%d) :%s: (unknown)\n", m.Start, m.End, m.Shortcode)
		}
	}
	if sug, ok := r.Suggest(text, 0); ok {
		found = true
		fmt.Fprintf(w, "partial [%d,%d) query=%q matches=%d\n", sug.Match.Start, sug.Match.End, sug.Match.Query, len(sug.Records))
	}
	if !found {
		fmt.Fprintln(w, "no shortcode")
	}
	return nil
}
