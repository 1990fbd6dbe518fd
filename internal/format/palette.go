package format

import "github.com/jwulff/sheetfont-go/internal/domain"

// Named colors for CustomBuilder segments.
const (
	White      domain.Color = 0xFFFFFFFF
	Yellow     domain.Color = 0xFFFFFF00
	Orange     domain.Color = 0xFFFF8800
	Red        domain.Color = 0xFFFF0000
	Pink       domain.Color = 0xFFFF8888
	Magenta    domain.Color = 0xFFFF00FF
	Purple     domain.Color = 0xFF8800FF
	Blue       domain.Color = 0xFF0000FF
	Cyan       domain.Color = 0xFF0088FF
	Aqua       domain.Color = 0xFF00FFFF
	Green      domain.Color = 0xFF00FF00
	Chartreuse domain.Color = 0xFF88FF00
	LightGray  domain.Color = 0xFFBBBBBB
	Gray       domain.Color = 0xFF7C7C7C
	DarkGray   domain.Color = 0xFF333333
	// Black is fully transparent black, so segments in it vanish on a frame.
	Black domain.Color = 0
)

var namedColors = map[string]domain.Color{
	"white":      White,
	"yellow":     Yellow,
	"orange":     Orange,
	"red":        Red,
	"pink":       Pink,
	"magenta":    Magenta,
	"purple":     Purple,
	"blue":       Blue,
	"cyan":       Cyan,
	"aqua":       Aqua,
	"green":      Green,
	"chartreuse": Chartreuse,
	"lightgray":  LightGray,
	"gray":       Gray,
	"darkgray":   DarkGray,
	"black":      Black,
}

// ColorByName returns the palette color for a lower-case name.
func ColorByName(name string) (domain.Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// CodeTheme assigns a color to every syntax category of CodeBuilder.
type CodeTheme struct {
	Text          domain.Color
	Keyword       domain.Color
	Variable      domain.Color
	LocalVariable domain.Color
	Constant      domain.Color
	Class         domain.Color
	Interface     domain.Color
	Number        domain.Color
	String        domain.Color
	Method        domain.Color
	Comment       domain.Color
}

// DefaultCodeTheme is a dark-background syntax palette.
var DefaultCodeTheme = CodeTheme{
	Text:          0xFFFFFFFF,
	Keyword:       0xFFBF7232,
	Variable:      0xFF87DEF5,
	LocalVariable: 0xFF84A9F9,
	Constant:      0xFF9ED8F5,
	Class:         0xFF428EBF,
	Interface:     0xFF9CEFF4,
	Number:        0xFF7295B8,
	String:        0xFF5ABDA0,
	Method:        0xFF56B251,
	Comment:       0xFF7B7B7B,
}
