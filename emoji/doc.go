// Package emoji holds the static shortcode table.
//
// A Table is built once from a dataset (the embedded default or a JSON file)
// and is read-only afterwards, so one Table may be shared by any number of
// goroutines. Shortcodes are matched case-sensitively and never include the
// surrounding colons.
package emoji
