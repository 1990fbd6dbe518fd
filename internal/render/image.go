package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FrameImage converts a frame into an opaque NRGBA image.
func FrameImage(frame *domain.Frame) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			p := frame.GetPixel(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return img
}

// WritePNG encodes frame as a PNG image.
func WritePNG(w io.Writer, frame *domain.Frame) error {
	return png.Encode(w, FrameImage(frame))
}

// DrawString draws text onto an arbitrary image with its top-left corner at
// (x, y). Control runes are not interpreted; use DrawText for those.
func DrawString(dst draw.Image, f *font.Font, text string, x, y int, c color.Color) {
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: NewFace(f),
		Dot:  fixed.P(x, y+f.CellHeight()),
	}
	d.DrawString(text)
}
