package editor

import (
	"sort"

	"github.com/iw2rmb/emojicode/shortcode"
)

type VirtualRole uint8

const (
	// RoleEmoji renders a shortcode as its glyph.
	RoleEmoji VirtualRole = iota
	// RoleOverlay is annotation text such as the inline suggestion.
	RoleOverlay
)

// VirtualInsertion is display-only text placed before GraphemeCol.
type VirtualInsertion struct {
	GraphemeCol int
	Text        string
	Role        VirtualRole
	StyleKey    string
}

// VirtualDeletion hides [StartGraphemeCol, EndGraphemeCol) from display.
type VirtualDeletion struct {
	StartGraphemeCol int
	EndGraphemeCol   int
}

// VirtualText is the per-row display transform. The buffer is untouched.
type VirtualText struct {
	Insertions []VirtualInsertion
	Deletions  []VirtualDeletion
}

func (vt VirtualText) empty() bool {
	return len(vt.Insertions) == 0 && len(vt.Deletions) == 0
}

// shortcodePreview turns every known shortcode in line into an emoji node.
// A shortcode touching the cursor stays raw so it can be edited.
func (m *Model) shortcodePreview(row int) VirtualText {
	if !m.cfg.PreviewShortcodes {
		return VirtualText{}
	}
	line := m.buf.LineText(row)
	cur := m.buf.Cursor()

	var vt VirtualText
	for _, match := range shortcode.FindAll(line) {
		rec, ok := m.resolver.Table().Lookup(match.Shortcode)
		if !ok {
			continue
		}
		start, end := shortcode.GraphemeSpan(line, match.Start, match.End)
		if m.focused && cur.Row == row && cur.GraphemeCol >= start && cur.GraphemeCol <= end {
			continue
		}
		vt.Deletions = append(vt.Deletions, VirtualDeletion{StartGraphemeCol: start, EndGraphemeCol: end})
		vt.Insertions = append(vt.Insertions, VirtualInsertion{
			GraphemeCol: start,
			Text:        rec.Unicode,
			Role:        RoleEmoji,
			StyleKey:    "emoji",
		})
	}
	return vt
}

// normalizeVirtualText clamps to the line, drops empty or overlapping
// deletions and sorts both lists by column.
func normalizeVirtualText(vt VirtualText, lineLen int) VirtualText {
	var out VirtualText

	dels := append([]VirtualDeletion(nil), vt.Deletions...)
	sort.SliceStable(dels, func(i, j int) bool { return dels[i].StartGraphemeCol < dels[j].StartGraphemeCol })
	last := -1
	for _, d := range dels {
		s := clamp(d.StartGraphemeCol, 0, lineLen)
		e := clamp(d.EndGraphemeCol, 0, lineLen)
		if e <= s || s < last {
			continue
		}
		out.Deletions = append(out.Deletions, VirtualDeletion{StartGraphemeCol: s, EndGraphemeCol: e})
		last = e
	}

	for _, ins := range vt.Insertions {
		if ins.Text == "" {
			continue
		}
		ins.GraphemeCol = clamp(ins.GraphemeCol, 0, lineLen)
		out.Insertions = append(out.Insertions, ins)
	}
	sort.SliceStable(out.Insertions, func(i, j int) bool {
		return out.Insertions[i].GraphemeCol < out.Insertions[j].GraphemeCol
	})
	return out
}
