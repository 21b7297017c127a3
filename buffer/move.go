package buffer

import "github.com/iw2rmb/emojicode/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (doc start for MoveDoc)
	DirEnd  // line end (doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

func (b *Buffer) Move(m Move) {
	b.SetCursor(b.moveCursor(b.cursor, m))
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1
	line := b.lines[row]

	switch m.Dir {
	case DirHome:
		if m.Unit == MoveDoc {
			return Pos{}
		}
		return Pos{Row: row}
	case DirEnd:
		if m.Unit == MoveDoc {
			return Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}
		}
		return Pos{Row: row, GraphemeCol: len(line)}
	case DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: minInt(col, len(b.lines[row-1]))}
	case DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, GraphemeCol: minInt(col, len(b.lines[row+1]))}
	}

	if m.Unit == MoveWord {
		if m.Dir == DirLeft {
			return Pos{Row: row, GraphemeCol: prevWordBoundary(line, col)}
		}
		return Pos{Row: row, GraphemeCol: nextWordBoundary(line, col)}
	}

	switch m.Dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		}
	case DirRight:
		if col < len(line) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row < lastRow {
			return Pos{Row: row + 1}
		}
	}
	return p
}

// Word boundaries skip white space, then non-space, within one line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
