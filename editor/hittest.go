package editor

import "github.com/iw2rmb/emojicode/buffer"

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the editor's viewport: (0,0)
// is the top-left of the visible content region. Clicks on the gutter land at
// column 0, clicks past the end of a line at its end, and clicks on a
// previewed emoji at the start or end of its shortcode depending on the half
// of the glyph hit.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	row := clamp(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)

	x -= m.gutterWidth()
	if x < 0 {
		return buffer.Pos{Row: row}
	}

	rr := m.renderRow(row)
	if x >= len(rr.hitCol) {
		return buffer.Pos{Row: row, GraphemeCol: len(rr.cellX) - 1}
	}
	return buffer.Pos{Row: row, GraphemeCol: rr.hitCol[x]}
}

// docToScreenPos maps a document position to viewport-local coordinates.
// ok is false when the position is scrolled out of view.
func (m Model) docToScreenPos(pos buffer.Pos) (x, y int, ok bool) {
	row := clamp(pos.Row, 0, m.buf.LineCount()-1)
	rr := m.renderRow(row)

	x = m.gutterWidth() + rr.cellX[clamp(pos.GraphemeCol, 0, len(rr.cellX)-1)]
	y = row - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
