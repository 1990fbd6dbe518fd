package render

import (
	"testing"

	"github.com/jwulff/sheetfont-go/internal/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTinySheetDimensions(t *testing.T) {
	sheet := TinySheet()

	assert.Equal(t, 26*TinyCellWidth, sheet.Width)
	assert.Equal(t, 4*TinyCellHeight, sheet.Height)
}

func TestTinySheetCoversInventory(t *testing.T) {
	for _, r := range glyph.Characters {
		_, ok := GetTinyCharBitmap(r)
		assert.True(t, ok, "no tiny glyph for %q", r)
	}
}

func TestGetTinyCharBitmapUnknown(t *testing.T) {
	_, ok := GetTinyCharBitmap('é')
	assert.False(t, ok)
}

func TestTinyRegistry(t *testing.T) {
	r, err := TinyRegistry()
	require.NoError(t, err)

	require.Equal(t, 1, r.Len())
	f := r.Get("tiny", TinySize)
	require.NotNil(t, f)
	assert.Same(t, f, r.Default())
	assert.Equal(t, TinyCellHeight, f.CellHeight())

	widths := f.Widths()
	assert.Equal(t, 3, widths[glyph.Default.IndexOf('A')])
	assert.Equal(t, 2, widths[glyph.Default.IndexOf('.')])
	assert.Equal(t, 2, widths[glyph.Default.IndexOf('|')])
}

func TestTinyLowercaseSharesUppercase(t *testing.T) {
	f := tinyFont(t)

	lower, ok := f.Glyph('g')
	require.True(t, ok)
	upper, ok := f.Glyph('G')
	require.True(t, ok)
	assert.Equal(t, upper.Bitmap, lower.Bitmap)
}
