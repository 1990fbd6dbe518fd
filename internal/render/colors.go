package render

import "github.com/jwulff/sheetfont-go/internal/domain"

// Common colors for the display.
var (
	// Background
	ColorBlack = domain.NewRGB(0, 0, 0)
	ColorBg    = ColorBlack

	// Text colors
	ColorWhite     = domain.NewRGB(255, 255, 255)
	ColorGray      = domain.NewRGB(128, 128, 128)
	ColorDimGray   = domain.NewRGB(64, 64, 64)
	ColorLightGray = domain.NewRGB(192, 192, 192)

	// Editing overlays
	ColorCaret  = domain.NewRGB(255, 200, 0)
	ColorBounds = domain.NewRGB(0, 100, 200)
)

// DimColor reduces the brightness of a color by a factor (0-1).
func DimColor(c domain.RGB, factor float64) domain.RGB {
	if factor <= 0 {
		return ColorBlack
	}
	if factor >= 1 {
		return c
	}
	return domain.NewRGB(
		uint8(float64(c.R)*factor),
		uint8(float64(c.G)*factor),
		uint8(float64(c.B)*factor),
	)
}
