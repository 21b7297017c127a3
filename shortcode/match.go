package shortcode

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/iw2rmb/emojicode/internal/grapheme"
)

// ws is Unicode white space as text editors see it: ASCII \s, vertical tab,
// the Z categories (NBSP, ideographic space, line and paragraph separators)
// and the zero width no-break space U+FEFF.
const ws = `[\s\v\p{Z}\x{FEFF}]`

var (
	completeRE = regexp.MustCompile(`(?:^|` + ws + `)(:([0-9a-z+_-]+):)(?:$|` + ws + `)`)
	closingRE  = regexp.MustCompile(`(?:^|` + ws + `)(:([0-9a-z+_-]+):)$`)
	partialRE  = regexp.MustCompile(`(?:^|` + ws + `)(:([0-9a-z+_-]*))$`)
)

// Match is a complete `:shortcode:` occurrence. [Start, End) covers both
// colons and excludes the surrounding white space.
type Match struct {
	Start     int
	End       int
	Shortcode string
}

// SearchMatch is an open `:query` at the end of the text. [Start, End) covers
// the leading colon and the query.
type SearchMatch struct {
	Start int
	End   int
	Query string
}

// FindComplete returns the first complete shortcode in text.
func FindComplete(text string) (Match, bool) {
	return findWith(completeRE, text)
}

// FindClosing returns the complete shortcode that ends exactly at the end of
// text, which is what a cursor sees right after typing the closing colon.
func FindClosing(text string) (Match, bool) {
	return findWith(closingRE, text)
}

// FindAll returns every complete shortcode in text, left to right.
func FindAll(text string) []Match {
	var out []Match
	off := 0
	for off <= len(text) {
		m, ok := FindComplete(text[off:])
		if !ok {
			break
		}
		m.Start += off
		m.End += off
		out = append(out, m)
		off = m.End
	}
	return out
}

// FindPartial returns the unterminated shortcode at the end of text.
// The query may be empty when text ends with a lone colon.
func FindPartial(text string) (SearchMatch, bool) {
	loc := partialRE.FindStringSubmatchIndex(text)
	if loc == nil {
		return SearchMatch{}, false
	}
	return SearchMatch{
		Start: loc[2],
		End:   loc[3],
		Query: text[loc[4]:loc[5]],
	}, true
}

// IsSpace reports whether r is a shortcode boundary, matching the white space
// class of the patterns.
func IsSpace(r rune) bool {
	return strings.ContainsRune("\t\n\v\f\r \uFEFF", r) || unicode.In(r, unicode.Z)
}

func findWith(re *regexp.Regexp, text string) (Match, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Match{}, false
	}
	return Match{
		Start:     loc[2],
		End:       loc[3],
		Shortcode: text[loc[4]:loc[5]],
	}, true
}

// GraphemeSpan converts a byte span of text into grapheme columns.
func GraphemeSpan(text string, start, end int) (int, int) {
	return grapheme.ColFromByte(text, start), grapheme.ColFromByte(text, end)
}
