package font

import (
	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/glyph"
)

// Option adjusts a single Layout, Render, Measure or HitTest call.
type Option func(*settings)

type settings struct {
	color      domain.Color
	spacing    int
	lineHeight int
	colors     []domain.Color
	screen     Screen
}

// WithColor sets the initial text color. The default is glyph.Ink, which
// leaves glyphs as drawn on the sheet.
func WithColor(c domain.Color) Option {
	return func(s *settings) { s.color = c }
}

// WithSpacing sets the gap in pixels added after every glyph.
func WithSpacing(spacing int) Option {
	return func(s *settings) { s.spacing = spacing }
}

// WithLineHeight sets the extra vertical gap between lines.
func WithLineHeight(lineHeight int) Option {
	return func(s *settings) { s.lineHeight = lineHeight }
}

// WithColors sets the sequence consumed, one color per \b, by Layout and Render.
func WithColors(colors ...domain.Color) Option {
	return func(s *settings) { s.colors = colors }
}

// WithScreen draws this Render call onto s instead of the font's bound screen.
func WithScreen(screen Screen) Option {
	return func(s *settings) { s.screen = screen }
}

// DefaultSpacing returns size/16 + 1.
func (f *Font) DefaultSpacing() int {
	return f.size/16 + 1
}

// DefaultLineHeight returns size/2.5 truncated.
func (f *Font) DefaultLineHeight() int {
	return int(float64(f.size) / 2.5)
}

func (f *Font) settings(opts []Option) settings {
	s := settings{
		color:      glyph.Ink,
		spacing:    f.DefaultSpacing(),
		lineHeight: f.DefaultLineHeight(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
