package registry

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/jwulff/sheetfont-go/internal/domain"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Loader provides decoded glyph sheet images by path.
type Loader interface {
	Load(path string) (domain.Bitmap, error)
}

// FSLoader decodes PNG, BMP and WebP sheets from a file system.
type FSLoader struct {
	FS fs.FS
}

// Load opens and decodes the image at path.
func (l FSLoader) Load(path string) (domain.Bitmap, error) {
	f, err := l.FS.Open(path)
	if err != nil {
		return domain.Bitmap{}, fmt.Errorf("opening sheet %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return domain.Bitmap{}, fmt.Errorf("decoding sheet %s: %w", path, err)
	}
	Logger().Debug("decoded sheet", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return FromImage(img), nil
}

// FromImage converts any image to an ARGB bitmap with straight alpha.
func FromImage(img image.Image) domain.Bitmap {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	bm := domain.NewBitmap(b.Dx(), b.Dy())
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			i := nrgba.PixOffset(x, y)
			p := nrgba.Pix[i : i+4 : i+4]
			bm.Set(x, y, domain.NewColor(p[3], p[0], p[1], p[2]))
		}
	}
	return bm
}

// ToImage converts a bitmap to an NRGBA image.
func ToImage(bm domain.Bitmap) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, bm.Width, bm.Height))
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			c := bm.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R()
			img.Pix[i+1] = c.G()
			img.Pix[i+2] = c.B()
			img.Pix[i+3] = c.A()
		}
	}
	return img
}

// MapLoader serves bitmaps that are already in memory.
type MapLoader map[string]domain.Bitmap

// Load returns the bitmap registered under path.
func (m MapLoader) Load(path string) (domain.Bitmap, error) {
	bm, ok := m[path]
	if !ok {
		return domain.Bitmap{}, fmt.Errorf("sheet %s: %w", path, fs.ErrNotExist)
	}
	return bm, nil
}
