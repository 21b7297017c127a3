package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/emojicode/buffer"
	"github.com/iw2rmb/emojicode/emoji"
)

func testTable(t *testing.T) *emoji.Table {
	t.Helper()
	tbl, err := emoji.NewTable([]emoji.Record{
		{Hexcode: "1F604", Unicode: "\U0001F604", Shortcodes: []string{"smile"}, Label: "grinning face with smiling eyes"},
		{Hexcode: "1F603", Unicode: "\U0001F603", Shortcodes: []string{"smiley"}},
		{Hexcode: "1F60F", Unicode: "\U0001F60F", Shortcodes: []string{"smirk"}},
		{Hexcode: "1F389", Unicode: "\U0001F389", Shortcodes: []string{"tada"}},
		{Hexcode: "1F44D", Unicode: "\U0001F44D", Shortcodes: []string{"+1", "thumbsup"}},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Table:             testTable(t),
		ReplaceOnType:     true,
		PreviewShortcodes: true,
	}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func press(m Model, kt tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: kt})
	return m
}

func itemIDs(s CompletionState) []string {
	var out []string
	for _, idx := range s.VisibleIndices {
		out = append(out, s.Items[idx].ID)
	}
	return out
}

func TestTyping_ClosingColonReplacesKnownShortcode(t *testing.T) {
	var events []ChangeEvent
	cfg := testConfig(t)
	cfg.OnChange = func(ev ChangeEvent) { events = append(events, ev) }

	m := typeText(New(cfg), ":smile:")

	if got, want := m.Value(), "\U0001F604"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if len(events) != 8 {
		t.Fatalf("events=%d, want 8", len(events))
	}
	last := events[len(events)-1]
	if last.Source != buffer.ChangeSourceInputRule || last.Text != "\U0001F604" {
		t.Fatalf("last event=%+v", last)
	}
	if m.CompletionState().Visible {
		t.Fatalf("popup still visible after replacement")
	}
}

func TestTyping_ChunkWithTrailingSpaceReplaces(t *testing.T) {
	m := New(testConfig(t))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ok :smile: ")})

	if got, want := m.Value(), "ok \U0001F604 "; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, GraphemeCol: 5}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestTyping_SpaceAfterUndoneShortcodeKeepsIt(t *testing.T) {
	m := typeText(New(testConfig(t)), ":tada:")
	m = press(m, tea.KeyCtrlZ)
	m = typeText(m, " ")

	if got, want := m.Value(), ":tada: "; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestTyping_UnknownShortcodeStaysRaw(t *testing.T) {
	m := typeText(New(testConfig(t)), "a :nope_xyz:")
	if got, want := m.Value(), "a :nope_xyz:"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestTyping_ShortcodeInsideWordIsNotReplaced(t *testing.T) {
	m := typeText(New(testConfig(t)), "x:smile:")
	if got, want := m.Value(), "x:smile:"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestTyping_ReplaceOnTypeDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.ReplaceOnType = false
	m := typeText(New(cfg), ":smile:")
	if got, want := m.Value(), ":smile:"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestUndo_RestoresShortcodeAfterInputRule(t *testing.T) {
	m := typeText(New(testConfig(t)), "hi :tada:")
	if got, want := m.Value(), "hi \U0001F389"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}

	m = press(m, tea.KeyCtrlZ)
	if got, want := m.Value(), "hi :tada:"; got != want {
		t.Fatalf("after undo value=%q, want %q", got, want)
	}

	m = press(m, tea.KeyCtrlY)
	if got, want := m.Value(), "hi \U0001F389"; got != want {
		t.Fatalf("after redo value=%q, want %q", got, want)
	}
}

func TestPaste_ReplacesEveryKnownShortcode(t *testing.T) {
	var events []ChangeEvent
	cfg := testConfig(t)
	cfg.OnChange = func(ev ChangeEvent) { events = append(events, ev) }
	m := New(cfg)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":tada: and :nope: :+1:"), Paste: true})

	if got, want := m.Value(), "\U0001F389 and :nope: \U0001F44D"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if len(events) != 1 || events[0].Source != buffer.ChangeSourcePaste {
		t.Fatalf("events=%+v", events)
	}
}

func TestPaste_NormalizesCarriageReturns(t *testing.T) {
	m := New(testConfig(t))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb"), Paste: true})
	if got := m.Buffer().LineCount(); got != 2 {
		t.Fatalf("lines=%d, want 2", got)
	}
}

func TestKeyNavigationAndDeletion(t *testing.T) {
	m := typeText(New(testConfig(t)), "ab")
	m = press(m, tea.KeyLeft)
	m = press(m, tea.KeyBackspace)
	if got, want := m.Value(), "b"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	m = press(m, tea.KeyEnter)
	if got, want := m.Value(), "\nb"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	m = press(m, tea.KeyDelete)
	if got, want := m.Value(), "\n"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestBlurredModelIgnoresKeys(t *testing.T) {
	m := New(testConfig(t)).Blur()
	m = typeText(m, "abc")
	if m.Value() != "" {
		t.Fatalf("value=%q, want empty", m.Value())
	}
}

func TestNew_NormalizesConfig(t *testing.T) {
	m := New(Config{})
	if m.Resolver().Table() != emoji.Default() {
		t.Fatalf("nil table did not fall back to the embedded dataset")
	}
	if m.cfg.CompletionMinQuery != defaultCompletionMinQuery {
		t.Fatalf("min query=%d, want %d", m.cfg.CompletionMinQuery, defaultCompletionMinQuery)
	}
	if m.cfg.CompletionMaxVisibleRows != defaultCompletionMaxRows {
		t.Fatalf("max rows=%d, want %d", m.cfg.CompletionMaxVisibleRows, defaultCompletionMaxRows)
	}
	if len(m.cfg.KeyMap.Left.Keys()) == 0 || len(m.cfg.CompletionKeyMap.Accept.Keys()) == 0 {
		t.Fatalf("key maps not defaulted")
	}
}
