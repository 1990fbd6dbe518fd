package render

import (
	"unicode"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/glyph"
	"github.com/jwulff/sheetfont-go/internal/registry"
)

// Tiny font constants (3x5 pixel glyphs in 4x6 cells)
const (
	TinyCharWidth  = 3
	TinyCharHeight = 5
	TinyCellWidth  = TinyCharWidth + 1
	TinyCellHeight = TinyCharHeight + 1

	// TinyFamily and TinySize identify the built-in font.
	TinyFamily = "Tiny"
	TinySize   = 6

	tinyPath = "builtin/tiny_6pt.png"
)

// tinyFontData contains the 3x5 bitmap font data.
var tinyFontData = map[rune][TinyCharHeight]uint8{
	// Numbers
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b001, 0b001},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},

	// Uppercase letters
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b011, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b110, 0b100, 0b110, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b101, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b111, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b101, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},

	// Symbols
	'!':  {0b010, 0b010, 0b010, 0b000, 0b010},
	'@':  {0b111, 0b101, 0b111, 0b100, 0b011},
	'#':  {0b101, 0b111, 0b101, 0b111, 0b101},
	'$':  {0b011, 0b110, 0b010, 0b011, 0b110},
	'%':  {0b101, 0b001, 0b010, 0b100, 0b101},
	'^':  {0b010, 0b101, 0b000, 0b000, 0b000},
	'&':  {0b010, 0b101, 0b010, 0b101, 0b011},
	'*':  {0b000, 0b101, 0b010, 0b101, 0b000},
	'(':  {0b001, 0b010, 0b010, 0b010, 0b001},
	')':  {0b100, 0b010, 0b010, 0b010, 0b100},
	'{':  {0b011, 0b010, 0b110, 0b010, 0b011},
	'}':  {0b110, 0b010, 0b011, 0b010, 0b110},
	'[':  {0b011, 0b010, 0b010, 0b010, 0b011},
	']':  {0b110, 0b010, 0b010, 0b010, 0b110},
	':':  {0b000, 0b010, 0b000, 0b010, 0b000},
	';':  {0b000, 0b010, 0b000, 0b010, 0b100},
	',':  {0b000, 0b000, 0b000, 0b010, 0b100},
	'.':  {0b000, 0b000, 0b000, 0b000, 0b010},
	'\'': {0b010, 0b010, 0b000, 0b000, 0b000},
	'"':  {0b101, 0b101, 0b000, 0b000, 0b000},
	'-':  {0b000, 0b000, 0b111, 0b000, 0b000},
	'=':  {0b000, 0b111, 0b000, 0b111, 0b000},
	'_':  {0b000, 0b000, 0b000, 0b000, 0b111},
	'+':  {0b000, 0b010, 0b111, 0b010, 0b000},
	'<':  {0b001, 0b010, 0b100, 0b010, 0b001},
	'>':  {0b100, 0b010, 0b001, 0b010, 0b100},
	'?':  {0b111, 0b001, 0b010, 0b000, 0b010},
	'|':  {0b010, 0b010, 0b010, 0b010, 0b010},
	'/':  {0b001, 0b001, 0b010, 0b100, 0b100},
	'\\': {0b100, 0b100, 0b010, 0b001, 0b001},
	'`':  {0b100, 0b010, 0b000, 0b000, 0b000},
	'~':  {0b000, 0b011, 0b110, 0b000, 0b000},
}

// GetTinyCharBitmap returns the bitmap data for a tiny font character.
// Lowercase letters share the uppercase shapes.
func GetTinyCharBitmap(char rune) ([TinyCharHeight]uint8, bool) {
	bitmap, ok := tinyFontData[unicode.ToUpper(char)]
	return bitmap, ok
}

// TinySheet draws the built-in glyph sheet for the default inventory:
// 26 columns of 4x6 cells, ink on a transparent-key background.
func TinySheet() domain.Bitmap {
	inv := glyph.Default
	rows := (inv.Len() + registry.DefaultColumns - 1) / registry.DefaultColumns
	sheet := domain.NewBitmapWithColor(registry.DefaultColumns*TinyCellWidth, rows*TinyCellHeight, glyph.Transparent)

	for i := 0; i < inv.Len(); i++ {
		bitmap, ok := GetTinyCharBitmap(inv.Rune(i))
		if !ok {
			continue
		}
		cx := (i % registry.DefaultColumns) * TinyCellWidth
		cy := (i / registry.DefaultColumns) * TinyCellHeight
		for row := 0; row < TinyCharHeight; row++ {
			for col := 0; col < TinyCharWidth; col++ {
				if (bitmap[row] & (1 << (TinyCharWidth - 1 - col))) != 0 {
					sheet.Set(cx+col, cy+row, glyph.Ink)
				}
			}
		}
	}
	return sheet
}

// TinySheets declares the built-in sheet.
func TinySheets() []registry.Sheet {
	return []registry.Sheet{{
		Family:     TinyFamily,
		Size:       TinySize,
		Path:       tinyPath,
		CellHeight: TinyCellHeight,
	}}
}

// TinyRegistry builds a registry holding only the built-in font.
func TinyRegistry() (*registry.Registry, error) {
	loader := registry.MapLoader{tinyPath: TinySheet()}
	return registry.Build(loader, TinySheets())
}
