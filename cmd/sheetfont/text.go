package main

import (
	"strings"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/format"
)

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r", `\\`, `\`)

// unescape turns typed \n, \t and \r sequences into control runes.
func unescape(s string) string {
	return escapes.Replace(s)
}

// parseMarkup splits text on {color} tags into colored segments. Text before
// the first tag uses base. Braces that do not name a palette color are kept.
func parseMarkup(text string, base domain.Color) format.Format {
	b := format.NewCustomBuilder()
	color := base
	var seg strings.Builder

	flush := func() {
		if seg.Len() > 0 {
			b.Add(seg.String(), color)
			seg.Reset()
		}
	}

	for len(text) > 0 {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			seg.WriteString(text)
			break
		}
		end := strings.IndexByte(text[open:], '}')
		if end < 0 {
			seg.WriteString(text)
			break
		}
		name := text[open+1 : open+end]
		c, ok := format.ColorByName(strings.ToLower(name))
		if !ok {
			seg.WriteString(text[:open+end+1])
			text = text[open+end+1:]
			continue
		}
		seg.WriteString(text[:open])
		flush()
		color = c
		text = text[open+end+1:]
	}
	flush()
	return b.Build()
}
