package emoji

import (
	"fmt"
	"strings"
)

// Record is one emoji in the table.
type Record struct {
	Hexcode    string   `json:"hexcode"`
	Unicode    string   `json:"emoji"`
	Shortcodes []string `json:"shortcodes"`
	Label      string   `json:"label,omitempty"`
}

// HasShortcodePrefix reports whether any alias starts with prefix.
func (r Record) HasShortcodePrefix(prefix string) bool {
	for _, sc := range r.Shortcodes {
		if strings.HasPrefix(sc, prefix) {
			return true
		}
	}
	return false
}

// Shortcode returns the first alias, or "" when the record has none.
func (r Record) Shortcode() string {
	if len(r.Shortcodes) == 0 {
		return ""
	}
	return r.Shortcodes[0]
}

// HexcodeOf renders the code points of s in dataset form, e.g. "2764-FE0F".
func HexcodeOf(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("%04X", r))
	}
	return strings.Join(parts, "-")
}

func cloneRecord(r Record) Record {
	r.Shortcodes = append([]string(nil), r.Shortcodes...)
	return r
}
