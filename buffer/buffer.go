package buffer

import (
	"strings"

	"github.com/iw2rmb/emojicode/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

// Buffer holds text as grapheme clusters per line, plus the cursor.
type Buffer struct {
	lines   [][]string
	version uint64
	cursor  Pos

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineText returns the text of row, or "" when row is out of range.
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineGraphemes returns a copy of the clusters of row.
func (b *Buffer) LineGraphemes(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]string(nil), b.lines[row]...)
}

// TextBeforeCursor returns the cursor line up to the cursor. This is the
// text the shortcode matchers inspect while typing.
func (b *Buffer) TextBeforeCursor() string {
	return grapheme.Join(b.lines[b.cursor.Row][:b.cursor.GraphemeCol])
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
