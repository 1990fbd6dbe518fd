// Package baseline holds the hand-tuned vertical offsets that align glyphs
// of one point size to a common text line.
//
// Every glyph cell of a sheet shares one height, so descenders, quotes and
// operators need a per-character nudge. Positive values move a glyph down,
// negative values move it up. Each size also carries a shift subtracted from
// every slot, including characters the table does not list.
package baseline

import (
	"sort"

	"github.com/jwulff/sheetfont-go/internal/glyph"
)

// Table is the offset data for one point size.
type Table struct {
	Shift   int
	Offsets map[rune]int
}

// Offset returns the final offset for r after the shift is applied.
func (t Table) Offset(r rune) int {
	return t.Offsets[r] - t.Shift
}

// Lookup returns the table for size and whether one ships for it.
func Lookup(size int) (Table, bool) {
	t, ok := tables[size]
	return t, ok
}

// Offset returns the final offset of r at size. Unlisted sizes yield 0.
func Offset(size int, r rune) int {
	t, ok := tables[size]
	if !ok {
		return 0
	}
	return t.Offset(r)
}

// Offsets returns one offset per inventory slot for size.
func Offsets(size int, inv *glyph.Inventory) []int {
	out := make([]int, inv.Len())
	t, ok := tables[size]
	if !ok {
		return out
	}
	for i := range out {
		out[i] = t.Offset(inv.Rune(i))
	}
	return out
}

// Sizes returns the point sizes with a shipped table, ascending.
func Sizes() []int {
	sizes := make([]int, 0, len(tables))
	for size := range tables {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// Has reports whether a table ships for size.
func Has(size int) bool {
	_, ok := tables[size]
	return ok
}
