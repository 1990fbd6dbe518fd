package font

// Measure returns the pen position after the last line of text, using the
// same advances as Layout. A newline resets the width; \b is ignored.
func (f *Font) Measure(text string, opts ...Option) int {
	s := f.settings(opts)
	width := 0
	for _, r := range text {
		kind, _, adv := f.advance(r, s.spacing)
		switch kind {
		case stepNewline:
			width = 0
		case stepColor:
		default:
			width += adv
		}
	}
	return width
}

// HitTest maps a horizontal pixel offset into text to a rune index, for
// placing a cursor. After each rune's advance it checks
// width - advance/2 + size/4 >= targetX and returns the first index that
// passes. It returns 0 for empty text or targetX <= 0, and the last index
// when nothing passes.
func (f *Font) HitTest(text string, targetX int, opts ...Option) int {
	runes := []rune(text)
	if targetX <= 0 || len(runes) == 0 {
		return 0
	}

	s := f.settings(opts)
	quarter := float64(f.size / 4)
	width := 0
	for i, r := range runes {
		kind, _, adv := f.advance(r, s.spacing)
		switch kind {
		case stepNewline:
			width = 0
			continue
		case stepColor:
			continue
		}
		width += adv
		if float64(width)-float64(adv)/2+quarter >= float64(targetX) {
			return i
		}
	}
	return len(runes) - 1
}
