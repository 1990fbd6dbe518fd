package glyph

import (
	"fmt"

	"github.com/jwulff/sheetfont-go/internal/domain"
)

// SheetError reports a glyph sheet whose dimensions do not match its cell
// layout. It indicates a corrupt or mismatched asset.
type SheetError struct {
	Width, Height         int
	CellWidth, CellHeight int
	Reason                string
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("glyph sheet %dx%d with %dx%d cells: %s",
		e.Width, e.Height, e.CellWidth, e.CellHeight, e.Reason)
}

// Slice cuts sheet into cw×ch cells, row-major from the top-left corner.
// The sheet dimensions must be exact multiples of the cell size.
func Slice(sheet domain.Bitmap, cw, ch int) ([]domain.Bitmap, error) {
	if cw <= 0 || ch <= 0 {
		return nil, &SheetError{sheet.Width, sheet.Height, cw, ch, "cell size must be positive"}
	}
	if sheet.Width%cw != 0 || sheet.Height%ch != 0 {
		return nil, &SheetError{sheet.Width, sheet.Height, cw, ch, "dimensions are not a multiple of the cell size"}
	}
	if len(sheet.Pixels) != sheet.Width*sheet.Height {
		return nil, &SheetError{sheet.Width, sheet.Height, cw, ch,
			fmt.Sprintf("expected %d pixels, got %d", sheet.Width*sheet.Height, len(sheet.Pixels))}
	}

	cols := sheet.Width / cw
	rows := sheet.Height / ch
	cells := make([]domain.Bitmap, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells = append(cells, sheet.SubBitmap(col*cw, row*ch, cw, ch))
		}
	}
	return cells, nil
}

// SliceInventory slices sheet and keeps exactly one cell per inventory slot.
// Trailing cells beyond the inventory are dropped; too few cells is an error.
func SliceInventory(sheet domain.Bitmap, cw, ch int, inv *Inventory) ([]domain.Bitmap, error) {
	cells, err := Slice(sheet, cw, ch)
	if err != nil {
		return nil, err
	}
	if len(cells) < inv.Len() {
		return nil, &SheetError{sheet.Width, sheet.Height, cw, ch,
			fmt.Sprintf("%d cells for %d characters", len(cells), inv.Len())}
	}
	return cells[:inv.Len()], nil
}
