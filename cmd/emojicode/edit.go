package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/iw2rmb/emojicode/editor"
	"github.com/iw2rmb/emojicode/internal/config"
	"github.com/iw2rmb/emojicode/internal/logging"
)

// EditCommand returns the edit command
func EditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Open a terminal editor with shortcode completion",
		ArgsUsage: "[FILE]",
		Description: "ctrl+s saves FILE, ctrl+c quits. Without FILE the text is printed\n" +
			"to standard output on exit.",
		Action: runEdit,
	}
}

func runEdit(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// The terminal belongs to the editor; logs go to log.file or nowhere.
	w, closeLog, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := logging.Setup(cfg.Log.Level, w); err != nil {
		return err
	}

	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	path := c.Args().First()
	text := ""
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(data)
		case errors.Is(err, os.ErrNotExist):
			log.Info().Str("path", path).Msg("Starting new file")
		default:
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	ecfg := editorConfig(cfg)
	ecfg.Text = text
	ecfg.Table = table
	ecfg.OnChange = func(ev editor.ChangeEvent) {
		log.Debug().
			Uint64("version", ev.Version).
			Stringer("source", ev.Source).
			Int("edits", len(ev.Edits)).
			Msg("Document changed")
	}

	final, err := tea.NewProgram(
		newEditModel(editor.New(ecfg), path),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	m := final.(editModel)
	if m.err != nil {
		return m.err
	}
	if path == "" {
		fmt.Fprintln(c.App.Writer, m.editor.Value())
	}
	return nil
}

func editorConfig(cfg *config.Config) editor.Config {
	ecfg := editor.DefaultConfig()
	ecfg.ShowLineNums = cfg.Editor.LineNumbers
	ecfg.ReplaceOnType = cfg.Editor.ReplaceOnType
	ecfg.PreviewShortcodes = cfg.Editor.PreviewShortcodes
	ecfg.InlineSuggestion = cfg.Editor.InlineSuggestion
	ecfg.CompletionMaxVisibleRows = cfg.Completion.MaxRows
	ecfg.CompletionMaxWidth = cfg.Completion.MaxWidth
	ecfg.CompletionMinQuery = cfg.Completion.MinQuery
	return ecfg
}

type editModel struct {
	editor editor.Model
	path   string
	err    error
}

func newEditModel(e editor.Model, path string) editModel {
	return editModel{editor: e, path: path}
}

func (m editModel) Init() tea.Cmd { return m.editor.Init() }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			if m.path != "" {
				m.err = m.save()
				if m.err != nil {
					return m, tea.Quit
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m editModel) View() string { return m.editor.View() }

func (m editModel) save() error {
	if err := os.WriteFile(m.path, []byte(m.editor.Value()), 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", m.path, err)
	}
	log.Info().Str("path", m.path).Msg("Saved")
	return nil
}
