package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/emojicode/buffer"
	"github.com/iw2rmb/emojicode/internal/grapheme"
	"github.com/iw2rmb/emojicode/shortcode"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		m.handleKey(msg)
		m.refreshCompletion()
		if !m.syncFromBuffer() && m.cfg.InlineSuggestion {
			// Selection moves change the ghost text without touching the buffer.
			m.rebuildContent()
		}
		m.followCursor()
		return m, nil
	default:
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	if m.completion.Visible && m.handleCompletionKey(msg) {
		return
	}

	if key.Matches(msg, m.cfg.CompletionKeyMap.Trigger) {
		m.forced = true
		m.dismissed = false
		return
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Undo):
		m.buf.Undo()
	case key.Matches(msg, km.Redo):
		m.buf.Redo()
	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()
	case msg.Type == tea.KeyTab:
		m.insertTyped("\t")
	case msg.Type == tea.KeySpace:
		m.insertTyped(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		if msg.Paste {
			m.insertPasted(string(msg.Runes))
		} else {
			m.insertTyped(string(msg.Runes))
		}
	}
	m.emitChange()
}

// insertTyped inserts s and, when s closes a known shortcode, replaces the
// shortcode with its emoji as a separate undo step. A chunk such as ":tada: "
// counts as closing; white space typed after an existing shortcode does not.
func (m *Model) insertTyped(s string) {
	m.buf.InsertText(s)
	m.emitChange()
	if !m.cfg.ReplaceOnType {
		return
	}

	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	before := m.buf.TextBeforeCursor()
	inserted := len(before) - len(s)
	res, ok := m.resolver.ResolveTrailing(before)
	if !ok || res.End <= inserted {
		return
	}

	start, end := shortcode.GraphemeSpan(before, res.Start, res.End)
	trailing := grapheme.Count(before[res.End:])
	row := m.buf.Cursor().Row
	m.buf.ApplyFrom(buffer.ChangeSourceInputRule, buffer.TextEdit{
		Range: buffer.Range{
			Start: buffer.Pos{Row: row, GraphemeCol: start},
			End:   buffer.Pos{Row: row, GraphemeCol: end},
		},
		Text: res.Record.Unicode,
	})
	if trailing > 0 {
		m.buf.SetCursor(buffer.Pos{Row: row, GraphemeCol: start + grapheme.Count(res.Record.Unicode) + trailing})
	}
}

func (m *Model) insertPasted(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if m.cfg.ReplaceOnType {
		s, _ = m.resolver.ReplaceAll(s)
	}
	m.buf.InsertTextFrom(buffer.ChangeSourcePaste, s)
}

func (m *Model) handleCompletionKey(msg tea.KeyMsg) bool {
	ck := m.cfg.CompletionKeyMap
	rows := m.cfg.CompletionMaxVisibleRows
	switch {
	case key.Matches(msg, ck.Accept), key.Matches(msg, ck.AcceptTab):
		m.acceptCompletion()
	case key.Matches(msg, ck.Dismiss):
		m.dismissCompletion()
	case key.Matches(msg, ck.Next):
		m.completion.moveSelection(1)
	case key.Matches(msg, ck.Prev):
		m.completion.moveSelection(-1)
	case key.Matches(msg, ck.PageNext):
		m.completion.pageSelection(rows)
	case key.Matches(msg, ck.PagePrev):
		m.completion.pageSelection(-rows)
	default:
		return m.acceptGhost(msg)
	}
	return true
}

// acceptCompletion replaces the open query, colon included, with the
// selected emoji. The cursor ends after a space following the emoji; one is
// inserted unless the line already continues with a space.
func (m *Model) acceptCompletion() {
	item, ok := m.completion.selectedItem()
	if !ok {
		return
	}
	anchor := m.completion.Anchor
	m.completion = CompletionState{}
	m.forced = false

	cur := m.buf.Cursor()
	line := m.buf.LineGraphemes(cur.Row)
	spaceFollows := cur.GraphemeCol < len(line) && line[cur.GraphemeCol] == " "
	text := item.InsertText
	if !spaceFollows {
		text += " "
	}

	m.buf.ApplyFrom(buffer.ChangeSourceCompletion, buffer.TextEdit{
		Range: buffer.Range{Start: anchor, End: cur},
		Text:  text,
	})
	if spaceFollows {
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	}
	m.emitChange()
}

func (m *Model) dismissCompletion() {
	if m.completion.Visible {
		m.dismissed = true
		m.dismissedAnchor = m.completion.Anchor
	}
	m.completion = CompletionState{}
	m.forced = false
}

// refreshCompletion recomputes the popup from the text before the cursor.
// The selection survives while the anchor and query stay the same.
func (m *Model) refreshCompletion() {
	minQuery := m.cfg.CompletionMinQuery
	if m.forced {
		minQuery = 0
	}

	before := m.buf.TextBeforeCursor()
	sug, ok := m.resolver.Suggest(before, minQuery)
	if !ok {
		if _, open := shortcode.FindPartial(before); !open {
			m.forced = false
			m.dismissed = false
		}
		m.completion = CompletionState{}
		return
	}

	anchor := buffer.Pos{
		Row:         m.buf.Cursor().Row,
		GraphemeCol: grapheme.ColFromByte(before, sug.Match.Start),
	}
	if m.dismissed {
		if anchor == m.dismissedAnchor {
			m.completion = CompletionState{}
			return
		}
		m.dismissed = false
	}

	items := itemsFromRecords(sug.Records, sug.Match.Query)
	visible := m.filterCompletion(sug.Match.Query, items)
	if len(visible) == 0 {
		m.completion = CompletionState{}
		return
	}

	selected := 0
	prev := m.completion
	if prev.Visible && prev.Anchor == anchor && prev.Query == sug.Match.Query {
		selected = clamp(prev.Selected, 0, len(visible)-1)
	}
	m.completion = CompletionState{
		Visible:        true,
		Anchor:         anchor,
		Query:          sug.Match.Query,
		Items:          items,
		Selected:       selected,
		VisibleIndices: visible,
	}
}
