// Package buffer implements the document model the emoji editor edits.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters, so a
// multi-rune emoji such as a ZWJ sequence occupies exactly one column.
// Ranges are half-open: [Start, End).
package buffer
