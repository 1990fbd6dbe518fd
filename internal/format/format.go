// Package format builds color-coded text for the layout engine.
//
// A Format is a string in which every segment starts with a \b color switch,
// paired with the colors those switches select, in order.
package format

import (
	"strings"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/glyph"
)

// ColorSwitch is the control rune that selects the next color.
const ColorSwitch = '\b'

// Format is text with embedded color switches and the colors they select.
type Format struct {
	text   string
	colors []domain.Color
}

// Text returns the encoded text.
func (f Format) Text() string {
	return f.text
}

// Colors returns a copy of the color sequence.
func (f Format) Colors() []domain.Color {
	out := make([]domain.Color, len(f.colors))
	copy(out, f.colors)
	return out
}

type segment struct {
	text  string
	color domain.Color
}

func build(segments []segment) Format {
	var sb strings.Builder
	colors := make([]domain.Color, 0, len(segments))
	for _, s := range segments {
		sb.WriteRune(ColorSwitch)
		sb.WriteString(s.text)
		colors = append(colors, s.color)
	}
	return Format{text: sb.String(), colors: colors}
}

// CustomBuilder assembles a Format from arbitrarily colored segments.
type CustomBuilder struct {
	segments []segment
}

// NewCustomBuilder creates an empty builder.
func NewCustomBuilder() *CustomBuilder {
	return &CustomBuilder{}
}

// AddText appends a segment in the sheet's ink color.
func (b *CustomBuilder) AddText(text string) *CustomBuilder {
	return b.Add(text, glyph.Ink)
}

// Add appends a segment in color.
func (b *CustomBuilder) Add(text string, color domain.Color) *CustomBuilder {
	b.segments = append(b.segments, segment{text: text, color: color})
	return b
}

// Build returns the Format.
func (b *CustomBuilder) Build() Format {
	return build(b.segments)
}

// CodeBuilder assembles syntax-highlighted code from categorized segments.
type CodeBuilder struct {
	theme    CodeTheme
	segments []segment
}

// NewCodeBuilder creates a builder using DefaultCodeTheme.
func NewCodeBuilder() *CodeBuilder {
	return NewCodeBuilderWithTheme(DefaultCodeTheme)
}

// NewCodeBuilderWithTheme creates a builder using theme.
func NewCodeBuilderWithTheme(theme CodeTheme) *CodeBuilder {
	return &CodeBuilder{theme: theme}
}

func (b *CodeBuilder) add(text string, color domain.Color) *CodeBuilder {
	b.segments = append(b.segments, segment{text: text, color: color})
	return b
}

func (b *CodeBuilder) Text(text string) *CodeBuilder      { return b.add(text, b.theme.Text) }
func (b *CodeBuilder) Keyword(text string) *CodeBuilder   { return b.add(text, b.theme.Keyword) }
func (b *CodeBuilder) Constant(text string) *CodeBuilder  { return b.add(text, b.theme.Constant) }
func (b *CodeBuilder) Class(text string) *CodeBuilder     { return b.add(text, b.theme.Class) }
func (b *CodeBuilder) Interface(text string) *CodeBuilder { return b.add(text, b.theme.Interface) }
func (b *CodeBuilder) Number(text string) *CodeBuilder    { return b.add(text, b.theme.Number) }
func (b *CodeBuilder) String(text string) *CodeBuilder    { return b.add(text, b.theme.String) }
func (b *CodeBuilder) Method(text string) *CodeBuilder    { return b.add(text, b.theme.Method) }
func (b *CodeBuilder) Comment(text string) *CodeBuilder   { return b.add(text, b.theme.Comment) }

// Variable appends a variable name; local variables get their own color.
func (b *CodeBuilder) Variable(text string, local bool) *CodeBuilder {
	if local {
		return b.add(text, b.theme.LocalVariable)
	}
	return b.add(text, b.theme.Variable)
}

// Build returns the Format.
func (b *CodeBuilder) Build() Format {
	return build(b.segments)
}
