package buffer

import "testing"

func TestNew_SplitsLinesIntoGraphemes(t *testing.T) {
	b := New("a\U0001F44D\n\U0001F468\u200d\U0001F4BBz", Options{})
	if got, want := b.LineCount(), 2; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	if got, want := len(b.LineGraphemes(1)), 2; got != want {
		t.Fatalf("row 1 graphemes=%d, want %d", got, want)
	}
	if got, want := b.Text(), "a\U0001F44D\n\U0001F468\u200d\U0001F4BBz"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestNew_Empty(t *testing.T) {
	b := New("", Options{})
	if b.LineCount() != 1 || b.Text() != "" {
		t.Fatalf("empty buffer: lines=%d text=%q", b.LineCount(), b.Text())
	}
	if got := b.TextBeforeCursor(); got != "" {
		t.Fatalf("TextBeforeCursor=%q", got)
	}
}

func TestSetCursor_ClampsAndBumpsVersion(t *testing.T) {
	b := New("ab\nc", Options{})
	v := b.Version()

	b.SetCursor(Pos{Row: 9, GraphemeCol: 9})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	b.SetCursor(Pos{Row: 1, GraphemeCol: 1})
	if got := b.Version(); got != v+1 {
		t.Fatalf("no-op SetCursor bumped version to %d", got)
	}
}

func TestTextBeforeCursor(t *testing.T) {
	b := New("first\nhi \U0001F604 :sm more", Options{})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 8})
	if got, want := b.TextBeforeCursor(), "hi \U0001F604 :sm"; got != want {
		t.Fatalf("TextBeforeCursor=%q, want %q", got, want)
	}
	if got, want := b.LineText(1), "hi \U0001F604 :sm more"; got != want {
		t.Fatalf("LineText=%q, want %q", got, want)
	}
	if got := b.LineText(5); got != "" {
		t.Fatalf("LineText out of range=%q", got)
	}
}
