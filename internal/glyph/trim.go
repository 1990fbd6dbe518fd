package glyph

import "github.com/jwulff/sheetfont-go/internal/domain"

// Trim returns the left-aligned columns of b up to and including the
// rightmost column holding ink. A cell without ink trims to width 1.
func Trim(b domain.Bitmap, ink domain.Color) domain.Bitmap {
	width := InkWidth(b, ink)
	if width == b.Width {
		return b.Clone()
	}
	return b.SubBitmap(0, 0, width, b.Height)
}

// InkWidth returns the width Trim would produce for b.
func InkWidth(b domain.Bitmap, ink domain.Color) int {
	maxX := 0
	for y := 0; y < b.Height; y++ {
		for x := maxX + 1; x < b.Width; x++ {
			if b.Pixels[x+y*b.Width] == ink {
				maxX = x
			}
		}
	}
	return maxX + 1
}

// TrimAll trims every cell.
func TrimAll(cells []domain.Bitmap, ink domain.Color) []domain.Bitmap {
	out := make([]domain.Bitmap, len(cells))
	for i, c := range cells {
		out[i] = Trim(c, ink)
	}
	return out
}
