// Package domain contains the pixel types shared by the glyph engine and its surfaces.
package domain

import "fmt"

// Pixoo64Size is the default Pixoo64 display size (64x64).
const Pixoo64Size = 64

// BytesPerPixel is the number of bytes per pixel (RGB).
const BytesPerPixel = 3

// RGB represents an RGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Equals checks if two RGB colors are equal.
func (c RGB) Equals(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the RGB color.
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// Frame is an RGB frame buffer. It is the screen surface glyphs are drawn onto.
type Frame struct {
	Width  int
	Height int
	// Pixels is a flat array of RGB values: [r0,g0,b0, r1,g1,b1, ...]
	Pixels []byte
}

// NewFrame creates a new frame filled with black (0, 0, 0).
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*BytesPerPixel),
	}
}

// NewFrameWithColor creates a new frame filled with the specified color.
func NewFrameWithColor(width, height int, color RGB) *Frame {
	f := NewFrame(width, height)
	f.Fill(color)
	return f
}

// SetPixel sets a single pixel in the frame. Out of bounds coordinates are silently ignored.
func (f *Frame) SetPixel(x, y int, color RGB) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	offset := (y*f.Width + x) * BytesPerPixel
	f.Pixels[offset] = color.R
	f.Pixels[offset+1] = color.G
	f.Pixels[offset+2] = color.B
}

// GetPixel returns the color at the specified coordinates, or nil if out of bounds.
func (f *Frame) GetPixel(x, y int) *RGB {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return nil
	}
	offset := (y*f.Width + x) * BytesPerPixel
	return &RGB{
		R: f.Pixels[offset],
		G: f.Pixels[offset+1],
		B: f.Pixels[offset+2],
	}
}

// Fill fills the entire frame with the specified color.
func (f *Frame) Fill(color RGB) {
	for i := 0; i < f.Width*f.Height; i++ {
		offset := i * BytesPerPixel
		f.Pixels[offset] = color.R
		f.Pixels[offset+1] = color.G
		f.Pixels[offset+2] = color.B
	}
}

// Clear fills the frame with an ARGB color; the alpha channel is ignored.
func (f *Frame) Clear(color Color) {
	f.Fill(color.RGB())
}

// Draw copies a bitmap onto the frame with its top-left corner at (x, y).
// Pixels equal to one of the transparent colors, or with zero alpha, are
// skipped so they never occlude what is already in the frame.
func (f *Frame) Draw(b Bitmap, x, y int, transparent ...Color) {
	for yy := 0; yy < b.Height; yy++ {
		for xx := 0; xx < b.Width; xx++ {
			c := b.Pixels[xx+yy*b.Width]
			if c.A() == 0 || isOneOf(c, transparent) {
				continue
			}
			f.SetPixel(x+xx, y+yy, c.RGB())
		}
	}
}

func isOneOf(c Color, set []Color) bool {
	for _, s := range set {
		if c == s {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	clone := &Frame{
		Width:  f.Width,
		Height: f.Height,
		Pixels: make([]byte, len(f.Pixels)),
	}
	copy(clone.Pixels, f.Pixels)
	return clone
}

// DrawRect draws a rectangle outline (not filled).
func (f *Frame) DrawRect(r Rect, color RGB) {
	for i := 0; i < r.Width; i++ {
		f.SetPixel(r.X+i, r.Y, color)
		f.SetPixel(r.X+i, r.Bottom()-1, color)
	}
	for i := 0; i < r.Height; i++ {
		f.SetPixel(r.X, r.Y+i, color)
		f.SetPixel(r.Right()-1, r.Y+i, color)
	}
}

// FillRect fills a rectangular area with the specified color.
func (f *Frame) FillRect(r Rect, color RGB) {
	for dy := 0; dy < r.Height; dy++ {
		for dx := 0; dx < r.Width; dx++ {
			f.SetPixel(r.X+dx, r.Y+dy, color)
		}
	}
}

// DrawVLine draws a vertical line of the given length starting at (x, y).
func (f *Frame) DrawVLine(x, y, length int, color RGB) {
	for i := 0; i < length; i++ {
		f.SetPixel(x, y+i, color)
	}
}
