package emoji

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyHexcode     = errors.New("emoji: empty hexcode")
	ErrDuplicateHexcode = errors.New("emoji: duplicate hexcode")
	ErrEmptyUnicode     = errors.New("emoji: empty unicode")
	ErrInvalidShortcode = errors.New("emoji: invalid shortcode")
)

// Table is an immutable shortcode -> emoji index.
//
// Records keep dataset order. When two records share a shortcode the first one
// wins for Lookup; both still appear in SearchPrefix results.
type Table struct {
	records     []Record
	byShortcode map[string]int
	byHexcode   map[string]int
}

// NewTable validates records and builds a Table. The input slice is copied.
func NewTable(records []Record) (*Table, error) {
	t := &Table{
		records:     make([]Record, 0, len(records)),
		byShortcode: make(map[string]int, len(records)),
		byHexcode:   make(map[string]int, len(records)),
	}
	for i, rec := range records {
		if rec.Hexcode == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyHexcode)
		}
		if rec.Unicode == "" {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.Hexcode, ErrEmptyUnicode)
		}
		if _, dup := t.byHexcode[rec.Hexcode]; dup {
			return nil, fmt.Errorf("record %d: %w: %s", i, ErrDuplicateHexcode, rec.Hexcode)
		}
		for _, sc := range rec.Shortcodes {
			if !validShortcode(sc) {
				return nil, fmt.Errorf("record %d (%s): %w: %q", i, rec.Hexcode, ErrInvalidShortcode, sc)
			}
		}

		idx := len(t.records)
		t.records = append(t.records, cloneRecord(rec))
		t.byHexcode[rec.Hexcode] = idx
		for _, sc := range rec.Shortcodes {
			if _, taken := t.byShortcode[sc]; !taken {
				t.byShortcode[sc] = idx
			}
		}
	}
	return t, nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of every record in dataset order.
func (t *Table) Records() []Record {
	return t.SearchPrefix("")
}

// Lookup finds the record carrying shortcode. Matching is exact and
// case-sensitive; code must not include colons.
func (t *Table) Lookup(code string) (Record, bool) {
	if t == nil || code == "" {
		return Record{}, false
	}
	idx, ok := t.byShortcode[code]
	if !ok {
		return Record{}, false
	}
	return cloneRecord(t.records[idx]), true
}

// ByHexcode finds the record with the given canonical hexcode.
func (t *Table) ByHexcode(hexcode string) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	idx, ok := t.byHexcode[hexcode]
	if !ok {
		return Record{}, false
	}
	return cloneRecord(t.records[idx]), true
}

// SearchPrefix returns every record with at least one shortcode starting
// with query, in dataset order. An empty query returns all records.
// The result is a fresh slice on each call.
func (t *Table) SearchPrefix(query string) []Record {
	if t == nil {
		return nil
	}
	out := make([]Record, 0)
	for _, rec := range t.records {
		if rec.HasShortcodePrefix(query) {
			out = append(out, cloneRecord(rec))
		}
	}
	return out
}

func validShortcode(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isShortcodeByte(s[i]) {
			return false
		}
	}
	return true
}

// isShortcodeByte reports whether c may appear between the colons of a
// shortcode: [0-9a-z+_-].
func isShortcodeByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c == '+' || c == '_' || c == '-':
		return true
	default:
		return false
	}
}
