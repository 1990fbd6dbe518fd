// Package font lays out escape-coded strings with glyph-sheet fonts.
//
// Layout walks a string rune by rune. Inventory runes become placements,
// everything else moves the pen: unknown runes and spaces advance by a
// fixed fallback width, and four control runes steer the layout:
//
//	\n  new line
//	\r  short space (half the fallback width)
//	\t  tab (twice the fallback width)
//	\b  switch to the next color of the caller's color sequence
//
// Measure and HitTest replay exactly the same advances so measured width,
// rendered width and cursor positions agree to the pixel.
package font

import (
	"fmt"

	"github.com/jwulff/sheetfont-go/internal/baseline"
	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/glyph"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Screen is the pixel surface placements are drawn onto.
type Screen interface {
	Clear(color domain.Color)
	Draw(b domain.Bitmap, x, y int, transparent ...domain.Color)
}

// Font is one family at one point size. It is immutable once built, apart
// from the screen binding which must be set during wiring.
type Font struct {
	family    string
	size      int
	inventory *glyph.Inventory
	glyphs    []glyph.Glyph
	screen    Screen
}

// NormalizeFamily upper-cases a family name the way fonts store it.
func NormalizeFamily(family string) string {
	return cases.Upper(language.Und).String(family)
}

// New builds a font from raw, untrimmed glyph cells, one per inventory slot.
// Cells are trimmed to their ink width and given the baseline offsets
// shipped for size. The family name is stored upper-cased.
func New(family string, size int, inv *glyph.Inventory, cells []domain.Bitmap) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font %s: invalid point size %d", family, size)
	}
	if len(cells) != inv.Len() {
		return nil, fmt.Errorf("font %s %dpt: %d cells for %d characters", family, size, len(cells), inv.Len())
	}

	trimmed := glyph.TrimAll(cells, glyph.Ink)
	offsets := baseline.Offsets(size, inv)
	glyphs := make([]glyph.Glyph, len(trimmed))
	for i, b := range trimmed {
		glyphs[i] = glyph.Glyph{Bitmap: b, Baseline: offsets[i]}
	}

	f := &Font{
		family:    NormalizeFamily(family),
		size:      size,
		inventory: inv,
		glyphs:    glyphs,
	}
	if !baseline.Has(size) {
		Logger().Debug("no baseline table for size", "font", f.String())
	}
	return f, nil
}

// NewFromSheet slices a glyph sheet into cw×ch cells and builds a font from
// the first inventory.Len() of them.
func NewFromSheet(family string, size int, inv *glyph.Inventory, sheet domain.Bitmap, cw, ch int) (*Font, error) {
	cells, err := glyph.SliceInventory(sheet, cw, ch, inv)
	if err != nil {
		return nil, fmt.Errorf("font %s %dpt: %w", family, size, err)
	}
	return New(family, size, inv, cells)
}

// SetScreen binds the screen used by Render when no WithScreen option is
// given. It returns the font for chaining.
func (f *Font) SetScreen(s Screen) *Font {
	f.screen = s
	return f
}

// Screen returns the bound screen, or nil.
func (f *Font) Screen() Screen {
	return f.screen
}

// Family returns the upper-cased family name.
func (f *Font) Family() string {
	return f.family
}

// Size returns the point size.
func (f *Font) Size() int {
	return f.size
}

// Inventory returns the character inventory glyphs are indexed by.
func (f *Font) Inventory() *glyph.Inventory {
	return f.inventory
}

// Glyph returns a copy of the glyph for r.
func (f *Font) Glyph(r rune) (glyph.Glyph, bool) {
	i := f.inventory.IndexOf(r)
	if i < 0 {
		return glyph.Glyph{}, false
	}
	g := f.glyphs[i]
	return glyph.Glyph{Bitmap: g.Bitmap.Clone(), Baseline: g.Baseline}, true
}

// Widths returns the trimmed width of every glyph in inventory order.
func (f *Font) Widths() []int {
	out := make([]int, len(f.glyphs))
	for i, g := range f.glyphs {
		out[i] = g.Width()
	}
	return out
}

// Baselines returns the baseline offset of every glyph in inventory order.
func (f *Font) Baselines() []int {
	out := make([]int, len(f.glyphs))
	for i, g := range f.glyphs {
		out[i] = g.Baseline
	}
	return out
}

// CellHeight returns the shared glyph height.
func (f *Font) CellHeight() int {
	if len(f.glyphs) == 0 {
		return 0
	}
	return f.glyphs[0].Bitmap.Height
}

// String returns the font as FAMILY_<size>PT, e.g. ARIAL_12PT.
func (f *Font) String() string {
	return fmt.Sprintf("%s_%dPT", f.family, f.size)
}
