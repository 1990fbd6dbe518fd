package render

import (
	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/font"
)

// Caret draws a text cursor for a click at clickX on a single line of text
// drawn at (x, y) and returns the rune index the cursor sits before.
func Caret(frame *domain.Frame, f *font.Font, text string, x, y, clickX int, color domain.RGB, opts ...font.Option) int {
	index := f.HitTest(text, clickX-x, opts...)

	caretX := x
	if index > 0 {
		prefix := string([]rune(text)[:index])
		// the column before the next glyph is inter-glyph spacing
		caretX += f.Measure(prefix, opts...) - 1
	}
	frame.DrawVLine(caretX, y, f.Size(), color)
	return index
}
