package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode white space.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ColFromByte maps a byte offset in text to a grapheme column.
//
// Offsets that fall inside a cluster resolve to the column of that cluster.
// Offsets past the end clamp to Count(text).
func ColFromByte(text string, off int) int {
	if off <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	col := 0
	for g.Next() {
		_, end := g.Positions()
		if off < end {
			return col
		}
		col++
	}
	return col
}

// ByteFromCol maps a grapheme column in text to a byte offset.
//
// Columns past the end clamp to len(text).
func ByteFromCol(text string, col int) int {
	if col <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == col {
			start, _ := g.Positions()
			return start
		}
		idx++
	}
	return len(text)
}
