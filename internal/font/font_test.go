package font

import (
	"testing"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrimsAndAppliesBaselines(t *testing.T) {
	f := newTestFont(t, 14, func(r rune) int {
		if r == 'W' {
			return 9
		}
		return 4
	})

	assert.Equal(t, "ARIAL", f.Family())
	assert.Equal(t, 14, f.Size())
	assert.Equal(t, "ARIAL_14PT", f.String())
	assert.Equal(t, 14, f.CellHeight())

	w, ok := f.Glyph('W')
	require.True(t, ok)
	assert.Equal(t, 9, w.Width())
	assert.Equal(t, -1, w.Baseline)

	g, ok := f.Glyph('g')
	require.True(t, ok)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Baseline)
}

func TestNewRejectsCellCountMismatch(t *testing.T) {
	inv := glyph.NewInventory("AB")
	cells := buildCells(glyph.NewInventory("A"), 4, 4, uniformWidth(2))

	_, err := New("arial", 12, inv, cells)
	assert.Error(t, err)
}

func TestNewRejectsInvalidSize(t *testing.T) {
	inv := glyph.NewInventory("A")
	_, err := New("arial", 0, inv, buildCells(inv, 4, 4, uniformWidth(2)))
	assert.Error(t, err)
}

func TestNewFromSheet(t *testing.T) {
	inv := glyph.NewInventory("AB")
	sheet := domain.NewBitmapWithColor(8, 4, glyph.Transparent)
	for y := 0; y < 4; y++ {
		sheet.Set(0, y, glyph.Ink)
		sheet.Set(2, y, glyph.Ink)
	}

	f, err := NewFromSheet("test", 4, inv, sheet, 4, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1}, f.Widths())
	assert.Equal(t, []int{0, 0}, f.Baselines())
}

func TestNewFromSheetBadDimensions(t *testing.T) {
	_, err := NewFromSheet("test", 4, glyph.NewInventory("AB"), domain.NewBitmap(9, 4), 4, 4)

	var sheetErr *glyph.SheetError
	assert.ErrorAs(t, err, &sheetErr)
}

func TestEveryInventoryRuneHasGlyph(t *testing.T) {
	f := newTestFont(t, 12, uniformWidth(3))

	for _, r := range glyph.Characters {
		g, ok := f.Glyph(r)
		require.True(t, ok, "rune %q", r)
		assert.NotEmpty(t, g.Bitmap.Pixels)
	}
	_, ok := f.Glyph(' ')
	assert.False(t, ok)
}

func TestGlyphReturnsCopy(t *testing.T) {
	f := newTestFont(t, 12, uniformWidth(3))

	g, _ := f.Glyph('A')
	g.Bitmap.ReplaceColor(glyph.Ink, 1)

	again, _ := f.Glyph('A')
	assert.Contains(t, again.Bitmap.Pixels, glyph.Ink)
}

func TestDefaults(t *testing.T) {
	f14 := newTestFont(t, 14, uniformWidth(3))
	assert.Equal(t, 1, f14.DefaultSpacing())
	assert.Equal(t, 5, f14.DefaultLineHeight())
	assert.Equal(t, 9, f14.FallbackAdvance())

	f32 := newTestFont(t, 32, uniformWidth(3))
	assert.Equal(t, 3, f32.DefaultSpacing())
	assert.Equal(t, 12, f32.DefaultLineHeight())
	assert.Equal(t, 22, f32.FallbackAdvance())
}

func TestSetScreen(t *testing.T) {
	f := newTestFont(t, 12, uniformWidth(3))
	assert.Nil(t, f.Screen())

	screen := &recordingScreen{}
	assert.Same(t, f, f.SetScreen(screen))
	assert.Equal(t, screen, f.Screen())
}
