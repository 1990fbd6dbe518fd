package render

import (
	"fmt"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/font"
)

// Align is the horizontal placement of a composed line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Line is one row of text in a composed frame.
type Line struct {
	Font *font.Font
	Text string
	// Format replaces Text and Color when set.
	Format font.Formatted
	Color  domain.RGB
	Align  Align
}

// ComposeOptions controls frame composition.
type ComposeOptions struct {
	Width      int
	Height     int
	Background domain.RGB
	// Padding is the horizontal and top margin in pixels.
	Padding int
	// ShowBounds outlines every line's layout bounds.
	ShowBounds bool
}

// DefaultComposeOptions returns options for a full Pixoo64 frame.
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{
		Width:      DisplayWidth,
		Height:     DisplayHeight,
		Background: ColorBg,
		Padding:    1,
	}
}

// ComposeFrame stacks lines top to bottom on a Pixoo64-sized frame.
func ComposeFrame(lines []Line) (*domain.Frame, error) {
	return Compose(DefaultComposeOptions(), lines)
}

// Compose stacks lines top to bottom, each below the previous line's bounds.
// Lines past the bottom edge are clipped by the frame.
func Compose(opts ComposeOptions, lines []Line) (*domain.Frame, error) {
	frame := domain.NewFrameWithColor(opts.Width, opts.Height, opts.Background)

	y := opts.Padding
	for i, line := range lines {
		if line.Font == nil {
			return nil, fmt.Errorf("line %d: no font", i)
		}
		out, err := composeLine(frame, opts, line, y)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		y = out.Bottom()
	}
	return frame, nil
}

func composeLine(frame *domain.Frame, opts ComposeOptions, line Line, y int) (*font.Output, error) {
	measured, err := layoutLine(line, 0, 0)
	if err != nil {
		return nil, err
	}

	inner := opts.Width - 2*opts.Padding
	x := opts.Padding
	switch line.Align {
	case AlignCenter:
		x += (inner - measured.Bounds.Width) / 2
	case AlignRight:
		x += inner - measured.Bounds.Width
	}

	if opts.ShowBounds {
		r := measured.Bounds
		r.X, r.Y = x, y
		frame.DrawRect(r, DimColor(ColorBounds, 0.5))
	}

	if line.Format != nil {
		return line.Font.RenderFormat(line.Format, x, y, font.WithScreen(frame))
	}
	return DrawText(frame, line.Font, line.Text, x, y, line.Color)
}

func layoutLine(line Line, x, y int) (*font.Output, error) {
	if line.Format != nil {
		return line.Font.LayoutFormat(line.Format, x, y)
	}
	return line.Font.Layout(line.Text, x, y)
}
