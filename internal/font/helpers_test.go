package font

import (
	"testing"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/glyph"
	"github.com/stretchr/testify/require"
)

// uniformWidth gives every glyph an ink width of n pixels.
func uniformWidth(n int) func(rune) int {
	return func(rune) int { return n }
}

// buildCells draws one cell per inventory rune whose ink spans the first
// width(r) columns of the bottom row. A width of 0 leaves the cell blank.
func buildCells(inv *glyph.Inventory, cw, ch int, width func(rune) int) []domain.Bitmap {
	cells := make([]domain.Bitmap, inv.Len())
	for i := range cells {
		b := domain.NewBitmapWithColor(cw, ch, glyph.Transparent)
		for x := 0; x < width(inv.Rune(i)); x++ {
			b.Set(x, ch-1, glyph.Ink)
		}
		cells[i] = b
	}
	return cells
}

func newTestFont(t *testing.T, size int, width func(rune) int) *Font {
	t.Helper()
	f, err := New("Arial", size, glyph.Default, buildCells(glyph.Default, size, size, width))
	require.NoError(t, err)
	return f
}

type drawCall struct {
	bitmap      domain.Bitmap
	x, y        int
	transparent []domain.Color
}

type recordingScreen struct {
	draws   []drawCall
	cleared []domain.Color
}

func (s *recordingScreen) Clear(c domain.Color) {
	s.cleared = append(s.cleared, c)
}

func (s *recordingScreen) Draw(b domain.Bitmap, x, y int, transparent ...domain.Color) {
	s.draws = append(s.draws, drawCall{bitmap: b, x: x, y: y, transparent: transparent})
}
