package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const emojiColumnWidth = 2

// completionPopupRender composites the popup over base, anchored under the
// query's colon, or above it when there is no room below.
func (m Model) completionPopupRender(base string) (string, bool) {
	state := m.completion
	if !state.Visible || len(state.VisibleIndices) == 0 {
		return "", false
	}

	viewportWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	viewportHeight := m.visibleRowCount()
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return "", false
	}

	anchorX, anchorY, ok := m.docToScreenPos(state.Anchor)
	if !ok {
		return "", false
	}

	rowCount := minInt(m.cfg.CompletionMaxVisibleRows, len(state.VisibleIndices))
	belowAvail := viewportHeight - (anchorY + 1)
	aboveAvail := anchorY
	showBelow := true
	if rowCount > belowAvail {
		switch {
		case aboveAvail >= rowCount:
			showBelow = false
		case aboveAvail > belowAvail:
			showBelow = false
			rowCount = aboveAvail
		default:
			rowCount = belowAvail
		}
	}
	if rowCount <= 0 {
		return "", false
	}

	first := 0
	if state.Selected >= rowCount {
		first = state.Selected - rowCount + 1
	}
	window := state.VisibleIndices[first : first+rowCount]

	width := 0
	for _, idx := range window {
		if w := completionRowWidth(state.Items[idx]); w > width {
			width = w
		}
	}
	width = minInt(width, minInt(m.cfg.CompletionMaxWidth, viewportWidth))

	rendered := make([]string, 0, len(window))
	for i, idx := range window {
		rendered = append(rendered, m.renderCompletionPopupRow(state.Items[idx], first+i == state.Selected, width))
	}

	y := anchorY + 1
	if !showBelow {
		y = anchorY - len(rendered)
	}
	x := clamp(anchorX, 0, maxInt(viewportWidth-width, 0))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return overlay.Composite(
		strings.Join(rendered, "\n"),
		base,
		overlay.Left,
		overlay.Top,
		leftFrame+x,
		topFrame+y,
	), true
}

// A row reads " <emoji> :label:  detail " with the emoji column two cells
// wide and one cell of padding on each side.
func completionRowWidth(item CompletionItem) int {
	w := 1 + emojiColumnWidth + 1 + segmentsWidth(item.Label) + 1
	if d := segmentsWidth(item.Detail); d > 0 {
		w += 2 + d
	}
	return w
}

func segmentsWidth(segs []CompletionSegment) int {
	w := 0
	for _, s := range segs {
		w += stringCellWidth(s.Text)
	}
	return w
}

func segmentsText(segs []CompletionSegment) string {
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func (m Model) renderCompletionPopupRow(item CompletionItem, selected bool, width int) string {
	base := m.cfg.Style.Popup
	if selected {
		base = m.cfg.Style.PopupSelected
	}
	emojiStyle := m.cfg.Style.Emoji.Inherit(base)
	detailStyle := m.cfg.Style.PopupDetail.Inherit(base)

	prefix := segmentsText(item.Prefix)
	if pw := stringCellWidth(prefix); pw < emojiColumnWidth {
		prefix += strings.Repeat(" ", emojiColumnWidth-pw)
	}
	used := 1 + emojiColumnWidth + 1

	label := runewidth.Truncate(segmentsText(item.Label), maxInt(width-used-1, 0), "…")
	used += runewidth.StringWidth(label)

	var sb strings.Builder
	sb.WriteString(base.Render(" "))
	sb.WriteString(emojiStyle.Render(prefix))
	sb.WriteString(base.Render(" " + label))

	if detail := segmentsText(item.Detail); detail != "" && width-used-3 > 0 {
		detail = runewidth.Truncate(detail, width-used-3, "…")
		sb.WriteString(detailStyle.Render("  " + detail))
		used += 2 + runewidth.StringWidth(detail)
	}
	if used < width {
		sb.WriteString(base.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
