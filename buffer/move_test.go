package buffer

import "testing"

func TestMove(t *testing.T) {
	text := "ab \U0001F604 cd\nx"
	cases := []struct {
		name string
		from Pos
		move Move
		want Pos
	}{
		{name: "left at BOF", from: Pos{}, move: Move{Unit: MoveGrapheme, Dir: DirLeft}, want: Pos{}},
		{name: "left over emoji", from: Pos{Row: 0, GraphemeCol: 4}, move: Move{Unit: MoveGrapheme, Dir: DirLeft}, want: Pos{Row: 0, GraphemeCol: 3}},
		{name: "left wraps", from: Pos{Row: 1, GraphemeCol: 0}, move: Move{Unit: MoveGrapheme, Dir: DirLeft}, want: Pos{Row: 0, GraphemeCol: 7}},
		{name: "right wraps", from: Pos{Row: 0, GraphemeCol: 7}, move: Move{Unit: MoveGrapheme, Dir: DirRight}, want: Pos{Row: 1, GraphemeCol: 0}},
		{name: "right at EOF", from: Pos{Row: 1, GraphemeCol: 1}, move: Move{Unit: MoveGrapheme, Dir: DirRight}, want: Pos{Row: 1, GraphemeCol: 1}},
		{name: "down clamps col", from: Pos{Row: 0, GraphemeCol: 5}, move: Move{Unit: MoveLine, Dir: DirDown}, want: Pos{Row: 1, GraphemeCol: 1}},
		{name: "up at top", from: Pos{Row: 0, GraphemeCol: 2}, move: Move{Unit: MoveLine, Dir: DirUp}, want: Pos{Row: 0, GraphemeCol: 2}},
		{name: "home", from: Pos{Row: 0, GraphemeCol: 5}, move: Move{Unit: MoveLine, Dir: DirHome}, want: Pos{Row: 0}},
		{name: "end", from: Pos{Row: 0, GraphemeCol: 1}, move: Move{Unit: MoveLine, Dir: DirEnd}, want: Pos{Row: 0, GraphemeCol: 7}},
		{name: "doc end", from: Pos{}, move: Move{Unit: MoveDoc, Dir: DirEnd}, want: Pos{Row: 1, GraphemeCol: 1}},
		{name: "word right", from: Pos{Row: 0, GraphemeCol: 0}, move: Move{Unit: MoveWord, Dir: DirRight}, want: Pos{Row: 0, GraphemeCol: 2}},
		{name: "word left", from: Pos{Row: 0, GraphemeCol: 7}, move: Move{Unit: MoveWord, Dir: DirLeft}, want: Pos{Row: 0, GraphemeCol: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(text, Options{})
			b.SetCursor(tc.from)
			b.Move(tc.move)
			if got := b.Cursor(); got != tc.want {
				t.Fatalf("cursor=%v, want %v", got, tc.want)
			}
		})
	}
}
