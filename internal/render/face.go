package render

import (
	"image"

	"github.com/jwulff/sheetfont-go/internal/font"
	"github.com/jwulff/sheetfont-go/internal/glyph"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face exposes a glyph-sheet font as a golang.org/x/image/font.Face so it
// can be drawn onto any draw.Image with a font.Drawer. The dot is the
// baseline at the bottom of the glyph cell.
type Face struct {
	f *font.Font
}

var _ xfont.Face = (*Face)(nil)

// NewFace wraps f.
func NewFace(f *font.Font) *Face {
	return &Face{f: f}
}

// Close implements the font.Face interface.
func (*Face) Close() error { return nil }

// Glyph implements the font.Face interface. Runes outside the inventory
// return an empty mask and the fallback advance.
func (fc *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	advance, _ = fc.GlyphAdvance(r)
	g, found := fc.f.Glyph(r)
	if !found {
		return image.Rectangle{}, image.NewAlpha(image.Rectangle{}), image.Point{}, advance, true
	}

	b := g.Bitmap
	alpha := image.NewAlpha(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) == glyph.Ink {
				alpha.Pix[y*alpha.Stride+x] = 0xff
			}
		}
	}

	top := dot.Y.Round() - fc.f.CellHeight() + g.Baseline
	left := dot.X.Round()
	dr = image.Rect(left, top, left+b.Width, top+b.Height)
	return dr, alpha, image.Point{}, advance, true
}

// GlyphBounds implements the font.Face interface.
func (fc *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	advance, _ = fc.GlyphAdvance(r)
	g, found := fc.f.Glyph(r)
	if !found {
		return fixed.Rectangle26_6{}, advance, true
	}
	top := g.Baseline - fc.f.CellHeight()
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(0, top),
		Max: fixed.P(g.Width(), top+g.Bitmap.Height),
	}
	return bounds, advance, true
}

// GlyphAdvance implements the font.Face interface.
func (fc *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	return fixed.I(fc.f.Measure(string(r))), true
}

// Kern implements the font.Face interface. Sheet fonts carry no kerning.
func (*Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements the font.Face interface.
func (fc *Face) Metrics() xfont.Metrics {
	ascent := fc.f.CellHeight()
	height := fc.f.Size() + fc.f.DefaultLineHeight()
	descent := height - ascent
	if descent < 0 {
		descent = 0
	}
	return xfont.Metrics{
		Height:     fixed.I(height),
		Ascent:     fixed.I(ascent),
		Descent:    fixed.I(descent),
		XHeight:    fixed.I(ascent),
		CapHeight:  fixed.I(ascent),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}
