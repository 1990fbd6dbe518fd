package format

import (
	"testing"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/glyph"
	"github.com/stretchr/testify/assert"
)

func TestCustomBuilder(t *testing.T) {
	f := NewCustomBuilder().
		AddText("Score: ").
		Add("42", Yellow).
		Build()

	assert.Equal(t, "\bScore: \b42", f.Text())
	assert.Equal(t, []domain.Color{glyph.Ink, Yellow}, f.Colors())
}

func TestCustomBuilderEmpty(t *testing.T) {
	f := NewCustomBuilder().Build()

	assert.Equal(t, "", f.Text())
	assert.Empty(t, f.Colors())
}

func TestFormatColorsIsCopy(t *testing.T) {
	f := NewCustomBuilder().Add("x", Red).Build()

	colors := f.Colors()
	colors[0] = Blue

	assert.Equal(t, Red, f.Colors()[0])
}

func TestOneColorPerSwitch(t *testing.T) {
	f := NewCodeBuilder().
		Keyword("func").
		Text(" ").
		Method("main").
		Text("() {").
		Comment("// hi").
		Build()

	switches := 0
	for _, r := range f.Text() {
		if r == ColorSwitch {
			switches++
		}
	}
	assert.Equal(t, len(f.Colors()), switches)
}

func TestCodeBuilderTheme(t *testing.T) {
	f := NewCodeBuilder().
		Keyword("var").
		Variable("x", true).
		Variable("y", false).
		Constant("MAX").
		Class("Font").
		Interface("Screen").
		Number("7").
		String(`"s"`).
		Build()

	theme := DefaultCodeTheme
	assert.Equal(t, []domain.Color{
		theme.Keyword, theme.LocalVariable, theme.Variable, theme.Constant,
		theme.Class, theme.Interface, theme.Number, theme.String,
	}, f.Colors())
}

func TestCodeBuilderCustomTheme(t *testing.T) {
	theme := CodeTheme{Keyword: Red}
	f := NewCodeBuilderWithTheme(theme).Keyword("if").Build()

	assert.Equal(t, []domain.Color{Red}, f.Colors())
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("chartreuse")
	assert.True(t, ok)
	assert.Equal(t, Chartreuse, c)

	_, ok = ColorByName("octarine")
	assert.False(t, ok)
}
