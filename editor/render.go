package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type spanKind uint8

const (
	spanText spanKind = iota
	spanCursor
	spanEmoji
	spanOverlay
)

// rowRender is one rendered document row. cellX[col] is the cell offset of
// grapheme column col inside the text area, for 0 <= col <= line length.
// hitCol[cell] is the column a click on that cell moves the cursor to.
type rowRender struct {
	view   string
	cellX  []int
	hitCol []int
}

func (m Model) renderContent() string {
	rows := make([]string, m.buf.LineCount())
	for row := range rows {
		rows[row] = m.renderRow(row).view
	}
	return strings.Join(rows, "\n")
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(strconv.Itoa(m.buf.LineCount())) + 1
}

func (m Model) renderGutter(row int) string {
	if !m.cfg.ShowLineNums {
		return ""
	}
	digits := m.gutterWidth() - 1
	num := fmt.Sprintf("%*d", digits, row+1)
	st := m.cfg.Style.LineNum
	if row == m.buf.Cursor().Row {
		st = m.cfg.Style.LineNumActive
	}
	return st.Render(num) + m.cfg.Style.Gutter.Render(" ")
}

func (m Model) renderRow(row int) rowRender {
	line := m.buf.LineGraphemes(row)
	vt := m.shortcodePreview(row)
	cur := m.buf.Cursor()
	cursorCol := -1
	if m.focused && cur.Row == row {
		cursorCol = cur.GraphemeCol
	}
	var ghost []VirtualInsertion
	if cursorCol == len(line) {
		ghost = m.ghostInsertions(row)
	}
	vt = normalizeVirtualText(vt, len(line))

	var (
		sb     strings.Builder
		run    strings.Builder
		kind   spanKind
		x      int
		cellX  = make([]int, len(line)+1)
		hitCol []int
		ins    = vt.Insertions
		del    = vt.Deletions
	)
	sb.WriteString(m.renderGutter(row))

	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.spanStyle(kind).Render(run.String()))
		run.Reset()
	}
	// emit writes text taking width cells. Clicks on the left half of the
	// cells land on leftCol, on the right half on rightCol.
	emit := func(k spanKind, text string, width, leftCol, rightCol int) {
		if k != kind {
			flush()
			kind = k
		}
		run.WriteString(text)
		for i := 0; i < width; i++ {
			if i < (width+1)/2 {
				hitCol = append(hitCol, leftCol)
			} else {
				hitCol = append(hitCol, rightCol)
			}
		}
		x += width
	}
	insertionKind := func(in VirtualInsertion) spanKind {
		if in.Role == RoleEmoji {
			return spanEmoji
		}
		return spanOverlay
	}

	for col := 0; col <= len(line); col++ {
		for len(ins) > 0 && ins[0].GraphemeCol == col {
			// An emoji node covers the deletion that starts here.
			right := col
			if len(del) > 0 && del[0].StartGraphemeCol == col {
				right = del[0].EndGraphemeCol
			}
			emit(insertionKind(ins[0]), ins[0].Text, stringCellWidth(ins[0].Text), col, right)
			ins = ins[1:]
		}
		cellX[col] = x

		if col == len(line) {
			if cursorCol == col {
				emit(spanCursor, " ", 1, col, col)
			}
			for _, g := range ghost {
				emit(spanOverlay, g.Text, stringCellWidth(g.Text), col, col)
			}
			break
		}

		for len(del) > 0 && del[0].EndGraphemeCol <= col {
			del = del[1:]
		}
		if len(del) > 0 && del[0].StartGraphemeCol <= col {
			continue
		}

		g := line[col]
		w := graphemeCellWidth(g, x)
		if g == "\t" {
			g = strings.Repeat(" ", w)
		}
		k := spanText
		if col == cursorCol {
			k = spanCursor
		}
		emit(k, g, w, col, col+1)
	}
	flush()

	return rowRender{view: sb.String(), cellX: cellX, hitCol: hitCol}
}

func (m Model) spanStyle(k spanKind) lipgloss.Style {
	switch k {
	case spanCursor:
		return m.cfg.Style.Cursor
	case spanEmoji:
		return m.cfg.Style.Emoji
	case spanOverlay:
		return m.cfg.Style.Overlay
	default:
		return m.cfg.Style.Text
	}
}
