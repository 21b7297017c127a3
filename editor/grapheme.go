package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

func tabAdvance(cellX int) int {
	return tabWidth - cellX%tabWidth
}

// graphemeCellWidth returns the terminal cells taken by one cluster placed at
// cellX.
func graphemeCellWidth(text string, cellX int) int {
	if text == "\t" {
		return tabAdvance(cellX)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}

// stringCellWidth sums cluster widths of text starting at column zero.
func stringCellWidth(text string) int {
	w := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w += graphemeCellWidth(g.Str(), w)
	}
	return w
}
