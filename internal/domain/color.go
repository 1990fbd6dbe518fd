package domain

import "fmt"

// Color is a 32-bit ARGB color, the pixel format of glyph sheets and bitmaps.
type Color uint32

// NewColor packs 8-bit channels into an ARGB color.
func NewColor(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Opaque returns a fully opaque color.
func Opaque(r, g, b uint8) Color {
	return NewColor(0xFF, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGB drops the alpha channel.
func (c Color) RGB() RGB {
	return RGB{R: c.R(), G: c.G(), B: c.B()}
}

// String returns the color as 0xAARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// ARGB converts an RGB color to an opaque ARGB color.
func (c RGB) ARGB() Color {
	return Opaque(c.R, c.G, c.B)
}
