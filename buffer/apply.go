package buffer

// Apply applies edits in order as one change. Each edit's range is read
// against the buffer as left by the previous edit.
//
//   - Ranges are clamped into document bounds.
//   - An empty range with text inserts.
//   - The cursor moves to the end of the last effective edit.
func (b *Buffer) Apply(edits ...TextEdit) {
	b.ApplyFrom(ChangeSourceLocal, edits...)
}

// ApplyFrom is Apply with an explicit change source. It reports whether any
// edit changed the document.
func (b *Buffer) ApplyFrom(source ChangeSource, edits ...TextEdit) bool {
	if len(edits) == 0 {
		return false
	}
	return b.edit(source, edits)
}
