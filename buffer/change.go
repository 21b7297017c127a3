package buffer

// ChangeSource identifies what produced a change.
type ChangeSource uint8

const (
	ChangeSourceLocal      ChangeSource = iota // typing, deletion, undo/redo
	ChangeSourceInputRule                      // closed shortcode replaced by its emoji
	ChangeSourceCompletion                     // accepted suggestion
	ChangeSourcePaste                          // pasted text, shortcodes already resolved
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceInputRule:
		return "input-rule"
	case ChangeSourceCompletion:
		return "completion"
	case ChangeSourcePaste:
		return "paste"
	default:
		return "unknown"
	}
}

// AppliedEdit describes one effective edit in a change.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a versioned mutation record.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
	AppliedEdits  []AppliedEdit
}

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	cursorBefore  Pos
	appliedEdits  []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = append([]AppliedEdit(nil), b.lastChange.AppliedEdits...)
	return out, true
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: b.version,
		cursorBefore:  b.cursor,
	}
}

func (cb *changeBuilder) add(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
		AppliedEdits:  append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

func wholeDocumentEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: documentRange(beforeText),
		RangeAfter:  documentRange(afterText),
		InsertText:  afterText,
		DeletedText: beforeText,
	}, true
}

func documentRange(text string) Range {
	lines := splitLines(text)
	lastRow := len(lines) - 1
	return Range{End: Pos{Row: lastRow, GraphemeCol: len(lines[lastRow])}}
}
