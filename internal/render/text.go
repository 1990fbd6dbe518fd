package render

import (
	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/font"
)

// DisplayWidth is the default Pixoo64 display width.
const DisplayWidth = 64

// DisplayHeight is the default Pixoo64 display height.
const DisplayHeight = 64

// Bounds represents the bounding box of rendered text.
type Bounds struct {
	Width  int
	Height int
}

func drawOpts(frame *domain.Frame, color domain.RGB, opts []font.Option) []font.Option {
	all := make([]font.Option, 0, len(opts)+2)
	all = append(all, font.WithColor(color.ARGB()))
	all = append(all, opts...)
	return append(all, font.WithScreen(frame))
}

// DrawText draws text with its top-left corner at (x, y).
func DrawText(frame *domain.Frame, f *font.Font, text string, x, y int, color domain.RGB, opts ...font.Option) (*font.Output, error) {
	return f.Render(text, x, y, drawOpts(frame, color, opts)...)
}

// DrawTextCentered draws text centered horizontally within the given width.
func DrawTextCentered(frame *domain.Frame, f *font.Font, text string, width, y int, color domain.RGB, opts ...font.Option) (*font.Output, error) {
	x := (width - f.Measure(text, opts...)) / 2
	return DrawText(frame, f, text, x, y, color, opts...)
}

// DrawTextCenteredAt draws text centered at a specific x coordinate.
func DrawTextCenteredAt(frame *domain.Frame, f *font.Font, text string, centerX, y int, color domain.RGB, opts ...font.Option) (*font.Output, error) {
	x := centerX - f.Measure(text, opts...)/2
	return DrawText(frame, f, text, x, y, color, opts...)
}

// DrawTextRightAligned draws text right-aligned to the specified x position.
func DrawTextRightAligned(frame *domain.Frame, f *font.Font, text string, rightX, y int, color domain.RGB, opts ...font.Option) (*font.Output, error) {
	x := rightX - f.Measure(text, opts...) + 1
	return DrawText(frame, f, text, x, y, color, opts...)
}

// TextBounds returns the bounding box for the given text.
func TextBounds(f *font.Font, text string, opts ...font.Option) (Bounds, error) {
	if len(text) == 0 {
		return Bounds{Width: 0, Height: 0}, nil
	}
	out, err := f.Layout(text, 0, 0, opts...)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{Width: out.Bounds.Width, Height: out.Bounds.Height}, nil
}
