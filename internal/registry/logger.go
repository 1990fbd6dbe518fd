package registry

import (
	"log/slog"

	"github.com/jwulff/sheetfont-go/internal/font"
)

// Logger returns the logger shared with the font package.
func Logger() *slog.Logger {
	return font.Logger()
}
