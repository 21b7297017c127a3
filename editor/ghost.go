package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ghostText is the rest of the selected suggestion's shortcode after the
// typed query, closing colon included. It is shown only with the cursor at
// the end of the query's line.
func (m Model) ghostText() (string, bool) {
	if !m.cfg.InlineSuggestion || !m.focused {
		return "", false
	}
	item, ok := m.completion.selectedItem()
	if !ok {
		return "", false
	}
	cur := m.buf.Cursor()
	if cur.Row != m.completion.Anchor.Row || cur.GraphemeCol != len(m.buf.LineGraphemes(cur.Row)) {
		return "", false
	}

	code := strings.TrimSuffix(strings.TrimPrefix(segmentsText(item.Label), ":"), ":")
	if !strings.HasPrefix(code, m.completion.Query) {
		return "", false
	}
	return code[len(m.completion.Query):] + ":", true
}

func (m Model) ghostInsertions(row int) []VirtualInsertion {
	text, ok := m.ghostText()
	if !ok || row != m.completion.Anchor.Row {
		return nil
	}
	return []VirtualInsertion{{
		GraphemeCol: len(m.buf.LineGraphemes(row)),
		Text:        text,
		Role:        RoleOverlay,
		StyleKey:    "ghost",
	}}
}

// acceptGhost takes the inline suggestion on Right, the way a shell accepts
// its autosuggestion.
func (m *Model) acceptGhost(msg tea.KeyMsg) bool {
	if _, ok := m.ghostText(); !ok || !key.Matches(msg, m.cfg.KeyMap.Right) {
		return false
	}
	m.acceptCompletion()
	return true
}
