package registry

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultColumns is the number of glyph cells per row in a shipped sheet.
const DefaultColumns = 26

// Sheet declares one glyph sheet asset and the font it becomes.
type Sheet struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
	Path   string `yaml:"path"`
	// Columns is the number of cells per row. Zero means DefaultColumns.
	Columns int `yaml:"columns,omitempty"`
	// CellHeight is the cell height in pixels. Zero means square cells.
	CellHeight int `yaml:"cell_height,omitempty"`
}

// Name returns the font identifier, e.g. "ARIAL_14PT".
func (s Sheet) Name() string {
	return fmt.Sprintf("%s_%dPT", normalize(s.Family), s.Size)
}

// cellSize derives the cell size from the decoded sheet width.
func (s Sheet) cellSize(sheetWidth int) (int, int) {
	cols := s.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	cw := sheetWidth / cols
	ch := s.CellHeight
	if ch <= 0 {
		ch = cw
	}
	return cw, ch
}

var arialSizes = []int{8, 9, 10, 11, 12, 14, 16, 18, 20, 22, 24, 26, 28, 32, 36, 40, 48, 72}

// Arial declares the shipped Arial sheets, smallest first.
var Arial = func() []Sheet {
	sheets := make([]Sheet, len(arialSizes))
	for i, size := range arialSizes {
		sheets[i] = Sheet{
			Family: "Arial",
			Size:   size,
			Path:   fmt.Sprintf("fonts/arial_%dpt.png", size),
		}
	}
	return sheets
}()

type manifest struct {
	Sheets []Sheet `yaml:"sheets"`
}

// LoadManifest reads sheet declarations from YAML:
//
//	sheets:
//	  - family: Arial
//	    size: 14
//	    path: fonts/arial_14pt.png
func LoadManifest(r io.Reader) ([]Sheet, error) {
	var m manifest
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("manifest: no sheets declared")
		}
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if len(m.Sheets) == 0 {
		return nil, fmt.Errorf("manifest: no sheets declared")
	}
	for i, s := range m.Sheets {
		if s.Family == "" {
			return nil, fmt.Errorf("manifest sheet %d: missing family", i)
		}
		if s.Size <= 0 {
			return nil, fmt.Errorf("manifest sheet %d (%s): invalid size %d", i, s.Family, s.Size)
		}
		if s.Path == "" {
			return nil, fmt.Errorf("manifest sheet %d (%s %dpt): missing path", i, s.Family, s.Size)
		}
	}
	return m.Sheets, nil
}
