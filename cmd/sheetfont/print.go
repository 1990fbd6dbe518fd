package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/render"
)

// printFrameASCII renders the frame as ASCII art
func printFrameASCII(w io.Writer, frame *domain.Frame) {
	// Top border
	fmt.Fprint(w, "  ┌")
	for x := 0; x < frame.Width; x++ {
		fmt.Fprint(w, "─")
	}
	fmt.Fprintln(w, "┐")

	for y := 0; y < frame.Height; y++ {
		fmt.Fprintf(w, "%2d│", y)
		for x := 0; x < frame.Width; x++ {
			fmt.Fprint(w, shade(frame.GetPixel(x, y)))
		}
		fmt.Fprintln(w, "│")
	}

	// Bottom border
	fmt.Fprint(w, "  └")
	for x := 0; x < frame.Width; x++ {
		fmt.Fprint(w, "─")
	}
	fmt.Fprintln(w, "┘")
}

func shade(pixel *domain.RGB) string {
	if pixel == nil {
		return " "
	}
	brightness := (int(pixel.R) + int(pixel.G) + int(pixel.B)) / 3

	switch {
	case brightness > 200:
		return "█"
	case brightness > 150:
		return "▓"
	case brightness > 100:
		return "▒"
	case brightness > 50:
		return "░"
	case brightness > 10:
		return "·"
	default:
		return " "
	}
}

func writePNGFile(path string, frame *domain.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(out, frame); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
