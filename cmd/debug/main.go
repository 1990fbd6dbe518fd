// Command debug prints the layout of a string as JSON: the font, bounds and
// every glyph placement.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jwulff/sheetfont-go/internal/config"
	"github.com/jwulff/sheetfont-go/internal/font"
	"github.com/spf13/pflag"
)

type placement struct {
	Rune   string `json:"rune"`
	Index  int    `json:"index"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color"`
}

type dump struct {
	Font       string      `json:"font"`
	Text       string      `json:"text"`
	Width      int         `json:"width"`
	Bounds     [4]int      `json:"bounds"`
	Placements []placement `json:"placements"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var x, y int
	fs := pflag.NewFlagSet("debug", pflag.ContinueOnError)
	fs.IntVar(&x, "x", 0, "Layout origin x")
	fs.IntVar(&y, "y", 0, "Layout origin y")

	cfg, args, err := config.Load(fs, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: debug [flags] <text>")
		return 1
	}
	config.SetVerbose(cfg.Debug)
	font.SetLogger(config.NewLogger(os.Stderr))

	reg, err := cfg.Registry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fonts: %v\n", err)
		return 1
	}
	f := reg.Get(cfg.Family, cfg.Size)
	if f == nil {
		f = reg.Default()
		fmt.Fprintf(os.Stderr, "No font %s %dpt, using %s\n", cfg.Family, cfg.Size, f)
	}

	text := strings.Join(args, " ")
	out, err := f.Layout(text, x, y)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	d := dump{
		Font:       f.String(),
		Text:       text,
		Width:      f.Measure(text),
		Bounds:     [4]int{out.Bounds.X, out.Bounds.Y, out.Bounds.Width, out.Bounds.Height},
		Placements: make([]placement, len(out.Placements)),
	}
	for i, p := range out.Placements {
		d.Placements[i] = placement{
			Rune:   string(p.Rune),
			Index:  p.Index,
			X:      p.X,
			Y:      p.Y,
			Width:  p.Glyph.Width,
			Height: p.Glyph.Height,
			Color:  p.Color.String(),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
