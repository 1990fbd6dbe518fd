package domain

// Bitmap is a width×height grid of ARGB pixels stored row-major.
type Bitmap struct {
	Width  int
	Height int
	Pixels []Color
}

// NewBitmap creates a bitmap with every pixel set to zero.
func NewBitmap(width, height int) Bitmap {
	return Bitmap{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// NewBitmapWithColor creates a bitmap filled with the given color.
func NewBitmapWithColor(width, height int, color Color) Bitmap {
	b := NewBitmap(width, height)
	for i := range b.Pixels {
		b.Pixels[i] = color
	}
	return b
}

// At returns the pixel at (x, y). Coordinates must be in range.
func (b Bitmap) At(x, y int) Color {
	return b.Pixels[x+y*b.Width]
}

// Set sets the pixel at (x, y). Out of bounds coordinates are silently ignored.
func (b Bitmap) Set(x, y int, c Color) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pixels[x+y*b.Width] = c
}

// Clone returns a deep copy; the pixel slice is never shared.
func (b Bitmap) Clone() Bitmap {
	clone := Bitmap{
		Width:  b.Width,
		Height: b.Height,
		Pixels: make([]Color, len(b.Pixels)),
	}
	copy(clone.Pixels, b.Pixels)
	return clone
}

// ReplaceColor swaps every pixel equal to from with to, in place.
func (b Bitmap) ReplaceColor(from, to Color) {
	for i, p := range b.Pixels {
		if p == from {
			b.Pixels[i] = to
		}
	}
}

// SubBitmap copies the w×h region whose top-left corner is (x, y).
// The region must lie within the bitmap.
func (b Bitmap) SubBitmap(x, y, w, h int) Bitmap {
	out := NewBitmap(w, h)
	for yy := 0; yy < h; yy++ {
		src := (y+yy)*b.Width + x
		copy(out.Pixels[yy*w:(yy+1)*w], b.Pixels[src:src+w])
	}
	return out
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x coordinate just past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }
