// Package shortcode finds `:shortcode:` tokens in text and resolves them
// against an emoji.Table.
//
// All offsets are byte offsets into the scanned string. A token is only
// recognized when it starts at the beginning of the text or after white
// space, so "a:smile:" and "http://x" never match.
package shortcode
