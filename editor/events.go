package editor

import "github.com/iw2rmb/emojicode/buffer"

// ChangeEvent is emitted through Config.OnChange after each effective edit.
type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	Source  buffer.ChangeSource
	Text    string
	Edits   []buffer.AppliedEdit
}
