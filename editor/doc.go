// Package editor provides a Bubble Tea text editor component that understands
// emoji shortcodes.
//
// Typing a closed shortcode such as `:tada:` replaces it with its emoji,
// pasting converts every known shortcode in the pasted text, and an open
// `:query` shows a suggestion popup fed by the emoji table. Shortcodes already
// present in the document are previewed as emoji while the cursor is away
// from them; the buffer keeps the typed text.
package editor
