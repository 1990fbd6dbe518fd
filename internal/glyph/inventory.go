// Package glyph cuts glyph sheets into per-character bitmaps.
//
// A glyph sheet is one image holding a fixed-size cell per supported
// character, left to right and wrapping into rows. Cells are sliced in
// inventory order and then trimmed to the columns that actually carry ink.
package glyph

import "github.com/jwulff/sheetfont-go/internal/domain"

// Characters is the ordered set of runes every shipped font provides.
const Characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789!@#$%^&*(){}[]:;" +
	",.'\"-=_+<>?|/\\`~"

// Ink is the marker color glyphs are drawn with on the sheet. It bounds the
// trimmed width and is substituted by the text color at render time.
const Ink domain.Color = 0xFF000000

// Transparent is the sheet background color, skipped when glyphs are drawn.
const Transparent domain.Color = 0xFFFF00FF

// Inventory is an ordered set of runes addressing glyph slots by position.
type Inventory struct {
	runes []rune
	index map[rune]int
}

// Default is the 94-character inventory shared by all shipped fonts.
var Default = NewInventory(Characters)

// NewInventory builds an inventory from the runes of s. Duplicate runes keep
// their first position.
func NewInventory(s string) *Inventory {
	inv := &Inventory{index: make(map[rune]int)}
	for _, r := range s {
		if _, ok := inv.index[r]; ok {
			continue
		}
		inv.index[r] = len(inv.runes)
		inv.runes = append(inv.runes, r)
	}
	return inv
}

// IndexOf returns the slot of r, or -1 if r has no glyph.
func (inv *Inventory) IndexOf(r rune) int {
	if i, ok := inv.index[r]; ok {
		return i
	}
	return -1
}

// Contains reports whether r has a glyph slot.
func (inv *Inventory) Contains(r rune) bool {
	_, ok := inv.index[r]
	return ok
}

// Rune returns the rune at slot i.
func (inv *Inventory) Rune(i int) rune {
	return inv.runes[i]
}

// Len returns the number of slots.
func (inv *Inventory) Len() int {
	return len(inv.runes)
}

// String returns the inventory runes in slot order.
func (inv *Inventory) String() string {
	return string(inv.runes)
}
