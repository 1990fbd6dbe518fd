package glyph

import "github.com/jwulff/sheetfont-go/internal/domain"

// Glyph is a trimmed character bitmap plus its vertical baseline offset.
type Glyph struct {
	Bitmap   domain.Bitmap
	Baseline int
}

// Width returns the trimmed width, the glyph's horizontal advance before spacing.
func (g Glyph) Width() int {
	return g.Bitmap.Width
}

// Tinted returns a copy of the glyph bitmap with ink replaced by color.
// The glyph itself is never modified.
func (g Glyph) Tinted(color domain.Color) domain.Bitmap {
	b := g.Bitmap.Clone()
	if color != Ink {
		b.ReplaceColor(Ink, color)
	}
	return b
}
