package shortcode

import (
	"strings"

	"github.com/iw2rmb/emojicode/emoji"
)

// Resolution is a complete shortcode that resolved to a record.
type Resolution struct {
	Record    emoji.Record
	Start     int
	End       int
	Shortcode string
}

// Suggestion is an open query together with the records it prefixes.
type Suggestion struct {
	Match   SearchMatch
	Records []emoji.Record
}

// Resolver ties the matchers to a table. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	table *emoji.Table
}

func NewResolver(t *emoji.Table) *Resolver {
	return &Resolver{table: t}
}

func (r *Resolver) Table() *emoji.Table { return r.table }

// Resolve finds the first complete shortcode in text and looks it up.
// A well-formed shortcode missing from the table yields false.
func (r *Resolver) Resolve(text string) (Resolution, bool) {
	m, ok := FindComplete(text)
	if !ok {
		return Resolution{}, false
	}
	return r.lookup(m)
}

// ResolveClosing resolves the shortcode that ends at the end of text.
func (r *Resolver) ResolveClosing(text string) (Resolution, bool) {
	m, ok := FindClosing(text)
	if !ok {
		return Resolution{}, false
	}
	return r.lookup(m)
}

// ResolveTrailing is ResolveClosing that also accepts a shortcode followed by
// a run of white space at the end of text, as when "smile: " arrives in one
// input chunk.
func (r *Resolver) ResolveTrailing(text string) (Resolution, bool) {
	if res, ok := r.ResolveClosing(text); ok {
		return res, true
	}
	trimmed := strings.TrimRightFunc(text, IsSpace)
	if len(trimmed) == len(text) {
		return Resolution{}, false
	}
	return r.ResolveClosing(trimmed)
}

// ReplaceAll substitutes every known shortcode in text with its glyph.
// Unknown shortcodes are left as typed. The returned resolutions carry
// offsets into the original text.
func (r *Resolver) ReplaceAll(text string) (string, []Resolution) {
	matches := FindAll(text)
	if len(matches) == 0 {
		return text, nil
	}

	var (
		sb   strings.Builder
		res  []Resolution
		last int
	)
	for _, m := range matches {
		hit, ok := r.lookup(m)
		if !ok {
			continue
		}
		sb.WriteString(text[last:hit.Start])
		sb.WriteString(hit.Record.Unicode)
		last = hit.End
		res = append(res, hit)
	}
	if len(res) == 0 {
		return text, nil
	}
	sb.WriteString(text[last:])
	return sb.String(), res
}

// Suggest inspects the text before the cursor for an open query of at least
// minQuery bytes and lists matching records.
func (r *Resolver) Suggest(beforeCursor string, minQuery int) (Suggestion, bool) {
	m, ok := FindPartial(beforeCursor)
	if !ok || len(m.Query) < minQuery {
		return Suggestion{}, false
	}
	return Suggestion{
		Match:   m,
		Records: r.table.SearchPrefix(m.Query),
	}, true
}

func (r *Resolver) lookup(m Match) (Resolution, bool) {
	rec, ok := r.table.Lookup(m.Shortcode)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{
		Record:    rec,
		Start:     m.Start,
		End:       m.End,
		Shortcode: m.Shortcode,
	}, true
}
