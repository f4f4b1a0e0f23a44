package headless

import (
	"strings"

	"falling-sand/internal/sims/sand"
)

var glyphs = [...]byte{
	sand.Air:   '.',
	sand.Sand:  '#',
	sand.Water: '~',
}

// Glyph returns the ASCII character used for m.
func Glyph(m sand.Material) byte {
	if int(m) < len(glyphs) {
		return glyphs[m]
	}
	return '?'
}

// RenderASCII draws g one row per line.
func RenderASCII(g *sand.Grid) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteByte(Glyph(g.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
