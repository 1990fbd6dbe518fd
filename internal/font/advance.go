package font

// Control runes interpreted by the layout engine.
const (
	Newline     = '\n'
	ShortSpace  = '\r'
	Tab         = '\t'
	ColorSwitch = '\b'
)

type step int

const (
	stepGlyph step = iota
	stepBlank
	stepNewline
	stepColor
)

// advance classifies r and returns how far it moves the pen. For glyphs
// index is the inventory slot. Layout, Measure and HitTest all go through
// here so their arithmetic cannot drift apart.
func (f *Font) advance(r rune, spacing int) (kind step, index, width int) {
	fallback := f.FallbackAdvance()
	switch r {
	case Newline:
		return stepNewline, -1, 0
	case ShortSpace:
		return stepBlank, -1, fallback >> 1
	case Tab:
		return stepBlank, -1, fallback << 1
	case ColorSwitch:
		return stepColor, -1, 0
	}
	i := f.inventory.IndexOf(r)
	if i < 0 {
		return stepBlank, -1, fallback
	}
	return stepGlyph, i, f.glyphs[i].Width() + spacing
}

// FallbackAdvance returns the advance of spaces and runes without a glyph:
// size/2 + size/5.
func (f *Font) FallbackAdvance() int {
	return f.size/2 + f.size/5
}
