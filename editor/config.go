package editor

import "github.com/iw2rmb/emojicode/emoji"

const (
	defaultCompletionMaxRows  = 8
	defaultCompletionMaxWidth = 48
	defaultCompletionMinQuery = 1
)

// Config configures a Model. The zero value is usable.
type Config struct {
	// Text is the initial document.
	Text string

	// Table resolves shortcodes; nil means emoji.Default().
	Table *emoji.Table

	ShowLineNums bool

	Style            Style
	KeyMap           KeyMap
	CompletionKeyMap CompletionKeyMap

	// ReplaceOnType enables the input rule (closing colon replaces a known
	// shortcode) and the paste rule (every known shortcode in pasted text).
	ReplaceOnType bool
	// PreviewShortcodes renders known shortcodes in the document as emoji
	// while the cursor is elsewhere.
	PreviewShortcodes bool
	// InlineSuggestion shows the rest of the selected suggestion after the
	// cursor; Right accepts it.
	InlineSuggestion bool

	CompletionMaxVisibleRows int // default 8
	CompletionMaxWidth       int // default 48 cells
	CompletionMinQuery       int // bytes after the colon; <=0 means 1
	CompletionFilter         CompletionFilter

	HistoryLimit int // passed to buffer.Options

	// OnChange is called synchronously after every effective edit.
	OnChange func(ChangeEvent)
}

// DefaultConfig enables both rules and the preview with default styles.
func DefaultConfig() Config {
	return Config{
		Style:             DefaultStyle(),
		KeyMap:            DefaultKeyMap(),
		CompletionKeyMap:  DefaultCompletionKeyMap(),
		ReplaceOnType:     true,
		PreviewShortcodes: true,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Table == nil {
		cfg.Table = emoji.Default()
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if len(cfg.CompletionKeyMap.Accept.Keys()) == 0 {
		cfg.CompletionKeyMap = DefaultCompletionKeyMap()
	}
	if cfg.CompletionMaxVisibleRows <= 0 {
		cfg.CompletionMaxVisibleRows = defaultCompletionMaxRows
	}
	if cfg.CompletionMaxWidth <= 0 {
		cfg.CompletionMaxWidth = defaultCompletionMaxWidth
	}
	if cfg.CompletionMinQuery <= 0 {
		cfg.CompletionMinQuery = defaultCompletionMinQuery
	}
	return cfg
}
