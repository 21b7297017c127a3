package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/emojicode/buffer"
	"github.com/iw2rmb/emojicode/emoji"
)

// CompletionSegment is one styled piece of a popup row.
type CompletionSegment struct {
	Text     string
	StyleKey string
}

// CompletionItem is one suggestion in the popup.
type CompletionItem struct {
	ID         string // hexcode
	InsertText string // glyph replacing the open query

	Prefix []CompletionSegment
	Label  []CompletionSegment
	Detail []CompletionSegment
}

// CompletionState is the popup's current state.
type CompletionState struct {
	Visible bool

	// Anchor is where the open query's colon sits.
	Anchor buffer.Pos
	Query  string

	Items          []CompletionItem
	Selected       int   // index into VisibleIndices
	VisibleIndices []int // indices into Items, in display order
}

// CompletionKeyMap defines popup-local bindings.
type CompletionKeyMap struct {
	Trigger   key.Binding
	Accept    key.Binding
	AcceptTab key.Binding
	Dismiss   key.Binding
	Next      key.Binding
	Prev      key.Binding
	PageNext  key.Binding
	PagePrev  key.Binding
}

func DefaultCompletionKeyMap() CompletionKeyMap {
	return CompletionKeyMap{
		Trigger:   key.NewBinding(key.WithKeys("ctrl+space", "ctrl+@"), key.WithHelp("ctrl+space", "suggest")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		AcceptTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "accept")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Next:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Prev:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		PageNext:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		PagePrev:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	}
}

// itemFromRecord labels the item with the first shortcode matching query.
func itemFromRecord(r emoji.Record, query string) CompletionItem {
	code := r.Shortcode()
	for _, sc := range r.Shortcodes {
		if strings.HasPrefix(sc, query) {
			code = sc
			break
		}
	}
	it := CompletionItem{
		ID:         r.Hexcode,
		InsertText: r.Unicode,
		Prefix:     []CompletionSegment{{Text: r.Unicode, StyleKey: "emoji"}},
		Label:      []CompletionSegment{{Text: ":" + code + ":"}},
	}
	if r.Label != "" {
		it.Detail = []CompletionSegment{{Text: r.Label, StyleKey: "detail"}}
	}
	return it
}

func itemsFromRecords(records []emoji.Record, query string) []CompletionItem {
	if len(records) == 0 {
		return nil
	}
	out := make([]CompletionItem, len(records))
	for i, r := range records {
		out[i] = itemFromRecord(r, query)
	}
	return out
}

func (s CompletionState) selectedItem() (CompletionItem, bool) {
	if !s.Visible || s.Selected < 0 || s.Selected >= len(s.VisibleIndices) {
		return CompletionItem{}, false
	}
	idx := s.VisibleIndices[s.Selected]
	if idx < 0 || idx >= len(s.Items) {
		return CompletionItem{}, false
	}
	return s.Items[idx], true
}

func cloneCompletionState(s CompletionState) CompletionState {
	out := s
	out.Items = cloneItems(s.Items)
	out.VisibleIndices = append([]int(nil), s.VisibleIndices...)
	return out
}

func cloneItems(items []CompletionItem) []CompletionItem {
	if items == nil {
		return nil
	}
	out := make([]CompletionItem, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Prefix = append([]CompletionSegment(nil), it.Prefix...)
		out[i].Label = append([]CompletionSegment(nil), it.Label...)
		out[i].Detail = append([]CompletionSegment(nil), it.Detail...)
	}
	return out
}

// moveSelection steps the selection by delta, wrapping at both ends.
func (s *CompletionState) moveSelection(delta int) {
	n := len(s.VisibleIndices)
	if n == 0 {
		s.Selected = 0
		return
	}
	s.Selected = ((s.Selected+delta)%n + n) % n
}

// pageSelection jumps by page rows without wrapping.
func (s *CompletionState) pageSelection(delta int) {
	n := len(s.VisibleIndices)
	if n == 0 {
		s.Selected = 0
		return
	}
	s.Selected = clamp(s.Selected+delta, 0, n-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
