package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = 2

// layoutColumns arranges words into as many equal-width columns as fit in
// width, filling row by row so corpus order reads left to right.
func layoutColumns(words []string, width int) string {
	if len(words) == 0 {
		return ""
	}
	cell := 0
	for _, w := range words {
		if n := runewidth.StringWidth(w); n > cell {
			cell = n
		}
	}
	cols := (width + columnGap) / (cell + columnGap)
	if cols < 1 {
		cols = 1
	}
	var b strings.Builder
	for i, w := range words {
		col := i % cols
		if col > 0 {
			b.WriteString(strings.Repeat(" ", columnGap))
		}
		b.WriteString(w)
		last := i == len(words)-1
		if col == cols-1 || last {
			if !last {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteString(strings.Repeat(" ", cell-runewidth.StringWidth(w)))
	}
	return b.String()
}
