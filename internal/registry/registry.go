// Package registry builds the fixed catalog of glyph fonts from sheet
// assets and looks them up by family and point size.
package registry

import (
	"fmt"
	"strings"

	"github.com/jwulff/sheetfont-go/internal/font"
	"github.com/jwulff/sheetfont-go/internal/glyph"
)

// DefaultFamily and DefaultSize name the font returned by Default.
const (
	DefaultFamily = "Arial"
	DefaultSize   = 14
)

// Registry holds fonts in declaration order. It is read-only after Build
// apart from SetScreen.
type Registry struct {
	fonts []*font.Font
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	inventory *glyph.Inventory
}

// WithInventory sets the character inventory of every sheet.
func WithInventory(inv *glyph.Inventory) Option {
	return func(o *buildOptions) {
		o.inventory = inv
	}
}

// Build loads, slices and trims every declared sheet. Any failure aborts the
// whole build.
func Build(loader Loader, sheets []Sheet, opts ...Option) (*Registry, error) {
	o := buildOptions{inventory: glyph.Default}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{fonts: make([]*font.Font, 0, len(sheets))}
	for _, s := range sheets {
		bm, err := loader.Load(s.Path)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", s.Name(), err)
		}
		cw, ch := s.cellSize(bm.Width)
		f, err := font.NewFromSheet(s.Family, s.Size, o.inventory, bm, cw, ch)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", s.Name(), err)
		}
		Logger().Debug("built font", "font", f.String(), "cell_width", cw, "cell_height", ch)
		r.fonts = append(r.fonts, f)
	}
	return r, nil
}

// New wraps already built fonts.
func New(fonts ...*font.Font) *Registry {
	r := &Registry{fonts: make([]*font.Font, len(fonts))}
	copy(r.fonts, fonts)
	return r
}

func normalize(family string) string {
	return font.NormalizeFamily(strings.TrimSpace(family))
}

// Get returns the font with the given family and size, or nil. Family
// comparison ignores case.
func (r *Registry) Get(family string, size int) *font.Font {
	i := r.IndexOf(family, size)
	if i < 0 {
		return nil
	}
	return r.fonts[i]
}

// IndexOf returns the declaration index of a font, or -1.
func (r *Registry) IndexOf(family string, size int) int {
	want := normalize(family)
	for i, f := range r.fonts {
		if f.Size() == size && f.Family() == want {
			return i
		}
	}
	return -1
}

// At returns the font at index, or nil when out of range.
func (r *Registry) At(index int) *font.Font {
	if index < 0 || index >= len(r.fonts) {
		return nil
	}
	return r.fonts[index]
}

// Len returns the number of fonts.
func (r *Registry) Len() int {
	return len(r.fonts)
}

// First returns the first declared font, or nil when empty.
func (r *Registry) First() *font.Font {
	return r.At(0)
}

// Last returns the last declared font, or nil when empty.
func (r *Registry) Last() *font.Font {
	return r.At(len(r.fonts) - 1)
}

// Default returns Arial 14pt, falling back to the first font.
func (r *Registry) Default() *font.Font {
	if f := r.Get(DefaultFamily, DefaultSize); f != nil {
		return f
	}
	return r.First()
}

// Fonts returns the fonts in declaration order.
func (r *Registry) Fonts() []*font.Font {
	out := make([]*font.Font, len(r.fonts))
	copy(out, r.fonts)
	return out
}

// SetScreen binds screen to every font.
func (r *Registry) SetScreen(screen font.Screen) {
	for _, f := range r.fonts {
		f.SetScreen(screen)
	}
}
