package font

import (
	"errors"
	"fmt"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/glyph"
)

// Placement is one glyph positioned and colored for drawing.
type Placement struct {
	Glyph domain.Bitmap
	X, Y  int
	Color domain.Color
	Rune  rune
	// Index is the rune index of the glyph within the laid out text.
	Index int
}

// Output is the result of a layout: its placements and bounding box.
type Output struct {
	Family     string
	Size       int
	Placements []Placement
	Bounds     domain.Rect
}

// Right returns the x coordinate just past the laid out text.
func (o *Output) Right() int { return o.Bounds.Right() }

// Bottom returns the y coordinate just past the last line.
func (o *Output) Bottom() int { return o.Bounds.Bottom() }

// ColorsExhaustedError is returned when a \b has no color left to switch to.
type ColorsExhaustedError struct {
	// Index is the rune index of the offending \b.
	Index int
	// Available is the length of the color sequence.
	Available int
}

func (e *ColorsExhaustedError) Error() string {
	return fmt.Sprintf("color switch at rune %d: color sequence exhausted after %d colors", e.Index, e.Available)
}

// IsColorsExhausted checks if an error is a ColorsExhaustedError.
func IsColorsExhausted(err error) bool {
	var target *ColorsExhaustedError
	return errors.As(err, &target)
}

// Formatted is text carrying its own color sequence for \b switches.
type Formatted interface {
	Text() string
	Colors() []domain.Color
}

// Layout positions text with its top-left corner at (x, y) without drawing.
func (f *Font) Layout(text string, x, y int, opts ...Option) (*Output, error) {
	return f.layout(text, x, y, f.settings(opts))
}

// LayoutFormat lays out formatted text using its color sequence.
func (f *Font) LayoutFormat(ft Formatted, x, y int, opts ...Option) (*Output, error) {
	return f.Layout(ft.Text(), x, y, append(opts, WithColors(ft.Colors()...))...)
}

// Render lays out text and draws every placement onto the screen given by
// WithScreen, or else the font's bound screen. Without any screen the
// layout is still returned and a warning is logged. Nothing is drawn when
// layout fails.
func (f *Font) Render(text string, x, y int, opts ...Option) (*Output, error) {
	s := f.settings(opts)
	out, err := f.layout(text, x, y, s)
	if err != nil {
		return nil, err
	}

	screen := s.screen
	if screen == nil {
		screen = f.screen
	}
	if screen == nil {
		Logger().Warn("screen is not set, skipping draw; bind one with SetScreen or WithScreen",
			"font", f.String(), "placements", len(out.Placements))
		return out, nil
	}

	for _, p := range out.Placements {
		screen.Draw(p.Glyph, p.X, p.Y, glyph.Transparent)
	}
	return out, nil
}

// RenderFormat renders formatted text using its color sequence.
func (f *Font) RenderFormat(ft Formatted, x, y int, opts ...Option) (*Output, error) {
	return f.Render(ft.Text(), x, y, append(opts, WithColors(ft.Colors()...))...)
}

func (f *Font) layout(text string, x, y int, s settings) (*Output, error) {
	var (
		placements []Placement
		cx         int
		line       int
		width      int
		next       int
		color      = s.color
	)
	lineAdvance := f.size + s.lineHeight

	for i, r := range []rune(text) {
		kind, index, adv := f.advance(r, s.spacing)
		switch kind {
		case stepNewline:
			cx = 0
			line++
			continue
		case stepColor:
			if next >= len(s.colors) {
				return nil, &ColorsExhaustedError{Index: i, Available: len(s.colors)}
			}
			color = s.colors[next]
			next++
			continue
		case stepBlank:
			cx += adv
			continue
		}

		g := f.glyphs[index]
		placements = append(placements, Placement{
			Glyph: g.Tinted(color),
			X:     x + cx,
			Y:     y + g.Baseline + line*lineAdvance,
			Color: color,
			Rune:  r,
			Index: i,
		})
		cx += adv
		if cx > width {
			width = cx
		}
	}

	return &Output{
		Family:     f.family,
		Size:       f.size,
		Placements: placements,
		Bounds: domain.Rect{
			X:      x,
			Y:      y,
			Width:  width,
			Height: (line + 1) * lineAdvance,
		},
	}, nil
}
