package buffer

import "testing"

func TestInsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	v := b.Version()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestInsertText_EmojiIsOneColumn(t *testing.T) {
	b := New("", Options{})
	b.InsertText("\U0001F468\u200d\U0001F4BB")
	b.InsertText("!")
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestInsertText_CombiningMarkMergesWithPrevious(t *testing.T) {
	b := New("eX", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	b.InsertText("\u0301")

	if got, want := len(b.LineGraphemes(0)), 2; got != want {
		t.Fatalf("graphemes=%d, want %d", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestInsertText_EmptyIsNoOp(t *testing.T) {
	b := New("a", Options{})
	v := b.Version()
	b.InsertText("")
	if b.Version() != v || b.CanUndo() {
		t.Fatalf("empty insert mutated buffer")
	}
}

func TestDeleteBackward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 0})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.DeleteBackward()
	if got, want := b.Text(), "acd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDeleteBackward_RemovesWholeEmoji(t *testing.T) {
	b := New("x\U0001F3F3\uFE0F\u200d\U0001F308", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	b.DeleteBackward()
	if got, want := b.Text(), "x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDeleteBackward_AtStartIsNoOp(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()
	b.DeleteBackward()
	if b.Version() != v || b.Text() != "ab" {
		t.Fatalf("backspace at BOF mutated buffer")
	}
}

func TestDeleteForward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 4})
	v := b.Version()
	b.DeleteForward()
	if b.Version() != v {
		t.Fatalf("delete at EOF mutated buffer")
	}
}

func TestTextInRange(t *testing.T) {
	b := New("one\ntwo\nthree", Options{})
	r := Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 2, GraphemeCol: 2}}
	if got, want := b.TextInRange(r), "ne\ntwo\nth"; got != want {
		t.Fatalf("TextInRange=%q, want %q", got, want)
	}
	reversed := Range{Start: r.End, End: r.Start}
	if got, want := b.TextInRange(reversed), "ne\ntwo\nth"; got != want {
		t.Fatalf("reversed TextInRange=%q, want %q", got, want)
	}
}
