package buffer

import (
	"strings"

	"github.com/iw2rmb/emojicode/internal/grapheme"
)

// InsertText inserts text at the cursor.
func (b *Buffer) InsertText(s string) {
	b.InsertTextFrom(ChangeSourceLocal, s)
}

// InsertTextFrom inserts text at the cursor and tags the change with source.
func (b *Buffer) InsertTextFrom(source ChangeSource, s string) {
	if s == "" {
		return
	}
	b.edit(source, []TextEdit{{Range: Range{Start: b.cursor, End: b.cursor}, Text: s}})
}

func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward removes the cluster before the cursor, joining lines at
// the start of a row.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	if row == 0 && col == 0 {
		return
	}
	start := Pos{Row: row, GraphemeCol: col - 1}
	if col == 0 {
		start = Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
	}
	b.edit(ChangeSourceLocal, []TextEdit{{Range: Range{Start: start, End: b.cursor}}})
}

// DeleteForward removes the cluster after the cursor, joining lines at the
// end of a row.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}
	end := Pos{Row: row, GraphemeCol: col + 1}
	if col == len(b.lines[row]) {
		end = Pos{Row: row + 1, GraphemeCol: 0}
	}
	b.edit(ChangeSourceLocal, []TextEdit{{Range: Range{Start: b.cursor, End: end}}})
}

// edit applies edits in order as one undoable change. The cursor lands at
// the end of the last effective edit.
func (b *Buffer) edit(source ChangeSource, edits []TextEdit) bool {
	prev := b.snapshot()
	change := b.beginChange(source)

	changed := false
	cursor := b.cursor
	for _, e := range edits {
		next, applied, ok := b.replaceRange(e.Range, e.Text)
		if !ok {
			continue
		}
		changed = true
		cursor = next
		change.add(applied)
	}
	if !changed {
		return false
	}

	b.cursor = b.clampPos(cursor)
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := b.textInRange(r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)
	ins := splitLines(text)

	repl := make([][]string, len(ins))
	for i, part := range ins {
		repl[i] = append([]string(nil), part...)
	}
	last := len(repl) - 1
	nextCursor = Pos{Row: startRow + last, GraphemeCol: len(repl[last])}
	if last == 0 {
		nextCursor.GraphemeCol += len(prefix)
	}
	repl[0] = append(prefix, repl[0]...)
	repl[last] = append(repl[last], suffix...)

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+last)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out

	// Re-segment the touched rows: a combining mark or ZWJ typed next to a
	// cluster merges with it, which shifts columns.
	cursorByte := len(grapheme.Join(b.lines[nextCursor.Row][:nextCursor.GraphemeCol]))
	b.resegment(startRow, nextCursor.Row)
	nextCursor.GraphemeCol = grapheme.ColFromByte(grapheme.Join(b.lines[nextCursor.Row]), cursorByte)

	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, applied, true
}

func (b *Buffer) resegment(fromRow, toRow int) {
	for row := fromRow; row <= toRow && row < len(b.lines); row++ {
		b.lines[row] = grapheme.Split(grapheme.Join(b.lines[row]))
	}
}

// TextInRange returns the text covered by r after clamping.
func (b *Buffer) TextInRange(r Range) string {
	return b.textInRange(NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

func (b *Buffer) textInRange(r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(b.lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(b.lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(b.lines[row][from:to]))
	}
	return sb.String()
}
