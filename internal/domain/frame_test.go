package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRGB(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, uint8(255), rgb.R)
	assert.Equal(t, uint8(128), rgb.G)
	assert.Equal(t, uint8(64), rgb.B)
}

func TestRGBEquals(t *testing.T) {
	rgb1 := NewRGB(100, 150, 200)
	rgb2 := NewRGB(100, 150, 200)
	rgb3 := NewRGB(100, 150, 201)

	assert.True(t, rgb1.Equals(rgb2))
	assert.False(t, rgb1.Equals(rgb3))
}

func TestRGBString(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, "RGB(255, 128, 64)", rgb.String())
}

func TestNewFrame(t *testing.T) {
	frame := NewFrame(64, 64)

	assert.Equal(t, 64, frame.Width)
	assert.Equal(t, 64, frame.Height)
	assert.Equal(t, 64*64*BytesPerPixel, len(frame.Pixels))
}

func TestNewFrameWithColor(t *testing.T) {
	red := NewRGB(255, 0, 0)
	frame := NewFrameWithColor(8, 8, red)

	assert.Equal(t, 8, frame.Width)
	assert.Equal(t, 8, frame.Height)

	// Check all pixels are red
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pixel := frame.GetPixel(x, y)
			require.NotNil(t, pixel)
			assert.True(t, pixel.Equals(red), "Pixel at (%d, %d) should be red", x, y)
		}
	}
}

func TestFrameSetGetPixel(t *testing.T) {
	frame := NewFrame(8, 8)
	blue := NewRGB(0, 0, 255)

	frame.SetPixel(3, 5, blue)
	pixel := frame.GetPixel(3, 5)

	require.NotNil(t, pixel)
	assert.True(t, pixel.Equals(blue))
}

func TestFrameSetPixelOutOfBounds(t *testing.T) {
	frame := NewFrame(8, 8)
	blue := NewRGB(0, 0, 255)

	// Should not panic, silently ignore out of bounds
	frame.SetPixel(-1, 0, blue)
	frame.SetPixel(0, -1, blue)
	frame.SetPixel(8, 0, blue)
	frame.SetPixel(0, 8, blue)
	frame.SetPixel(100, 100, blue)
}

func TestFrameGetPixelOutOfBounds(t *testing.T) {
	frame := NewFrame(8, 8)

	assert.Nil(t, frame.GetPixel(-1, 0))
	assert.Nil(t, frame.GetPixel(0, -1))
	assert.Nil(t, frame.GetPixel(8, 0))
	assert.Nil(t, frame.GetPixel(0, 8))
	assert.Nil(t, frame.GetPixel(100, 100))
}

func TestFrameFill(t *testing.T) {
	frame := NewFrame(4, 4)
	green := NewRGB(0, 255, 0)

	frame.Fill(green)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pixel := frame.GetPixel(x, y)
			require.NotNil(t, pixel)
			assert.True(t, pixel.Equals(green), "Pixel at (%d, %d) should be green", x, y)
		}
	}
}

func TestFrameClear(t *testing.T) {
	frame := NewFrameWithColor(4, 4, NewRGB(255, 0, 0))

	frame.Clear(NewColor(0x00, 10, 20, 30))

	want := NewRGB(10, 20, 30)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pixel := frame.GetPixel(x, y)
			require.NotNil(t, pixel)
			assert.True(t, pixel.Equals(want), "Pixel at (%d, %d) should be cleared", x, y)
		}
	}
}

func TestFrameClone(t *testing.T) {
	red := NewRGB(255, 0, 0)
	original := NewFrameWithColor(4, 4, red)

	clone := original.Clone()

	assert.Equal(t, original.Width, clone.Width)
	assert.Equal(t, original.Height, clone.Height)
	assert.Equal(t, original.Pixels, clone.Pixels)

	clone.SetPixel(0, 0, NewRGB(0, 0, 255))

	origPixel := original.GetPixel(0, 0)
	require.NotNil(t, origPixel)
	assert.True(t, origPixel.Equals(red), "Original should be unchanged after modifying clone")
}

func TestFrameDraw(t *testing.T) {
	frame := NewFrame(4, 4)
	magenta := Color(0xFFFF00FF)
	white := Color(0xFFFFFFFF)

	b := NewBitmapWithColor(2, 2, magenta)
	b.Set(1, 1, white)

	frame.Draw(b, 1, 1, magenta)

	black := NewRGB(0, 0, 0)
	assert.True(t, frame.GetPixel(1, 1).Equals(black), "transparent pixel should be skipped")
	assert.True(t, frame.GetPixel(2, 2).Equals(NewRGB(255, 255, 255)))
}

func TestFrameDrawSkipsZeroAlpha(t *testing.T) {
	frame := NewFrameWithColor(2, 2, NewRGB(9, 9, 9))
	b := NewBitmapWithColor(2, 2, NewColor(0, 255, 255, 255))

	frame.Draw(b, 0, 0)

	assert.True(t, frame.GetPixel(0, 0).Equals(NewRGB(9, 9, 9)))
}

func TestFrameDrawClipsOutOfBounds(t *testing.T) {
	frame := NewFrame(4, 4)
	b := NewBitmapWithColor(3, 3, Opaque(1, 2, 3))

	// Should not panic when partially off screen
	frame.Draw(b, 3, 3)
	frame.Draw(b, -2, -2)

	assert.True(t, frame.GetPixel(3, 3).Equals(NewRGB(1, 2, 3)))
	assert.True(t, frame.GetPixel(0, 0).Equals(NewRGB(1, 2, 3)))
}

func TestFrameDrawRect(t *testing.T) {
	frame := NewFrame(10, 10)
	white := NewRGB(255, 255, 255)

	frame.DrawRect(Rect{X: 2, Y: 2, Width: 4, Height: 3}, white)

	assert.True(t, frame.GetPixel(2, 2).Equals(white)) // Top-left
	assert.True(t, frame.GetPixel(5, 2).Equals(white)) // Top-right
	assert.True(t, frame.GetPixel(2, 4).Equals(white)) // Bottom-left
	assert.True(t, frame.GetPixel(5, 4).Equals(white)) // Bottom-right

	black := NewRGB(0, 0, 0)
	assert.True(t, frame.GetPixel(3, 3).Equals(black))
	assert.True(t, frame.GetPixel(4, 3).Equals(black))
}

func TestFrameFillRect(t *testing.T) {
	frame := NewFrame(10, 10)
	yellow := NewRGB(255, 255, 0)

	frame.FillRect(Rect{X: 1, Y: 1, Width: 3, Height: 2}, yellow)

	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			assert.True(t, frame.GetPixel(x, y).Equals(yellow), "Pixel at (%d, %d) should be yellow", x, y)
		}
	}

	black := NewRGB(0, 0, 0)
	assert.True(t, frame.GetPixel(0, 0).Equals(black))
	assert.True(t, frame.GetPixel(4, 1).Equals(black))
}

func TestFrameDrawVLine(t *testing.T) {
	frame := NewFrame(10, 10)
	red := NewRGB(255, 0, 0)

	frame.DrawVLine(7, 1, 5, red)

	for y := 1; y <= 5; y++ {
		assert.True(t, frame.GetPixel(7, y).Equals(red), "Pixel at (7, %d) should be red", y)
	}
	assert.True(t, frame.GetPixel(7, 6).Equals(NewRGB(0, 0, 0)))
}

func TestPixoo64Size(t *testing.T) {
	assert.Equal(t, 64, Pixoo64Size)
}

func TestBytesPerPixel(t *testing.T) {
	assert.Equal(t, 3, BytesPerPixel)
}
