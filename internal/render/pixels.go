// Package render converts simulation cells into pixels.
package render

import "image/color"

// fallbackPalette is used for sims that do not provide their own colors:
// zero renders black and every other value white.
var fallbackPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// FillPaletteRGBA converts cell values into RGBA pixels in buf using palette.
// Values beyond the palette clamp to its last entry. When the palette is
// empty the fallback black/white palette is used. buf must hold 4 bytes per
// cell; extra cells are ignored.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		palette = fallbackPalette
	}
	n := len(cells)
	if limit := len(buf) / 4; n > limit {
		n = limit
	}
	last := len(palette) - 1
	for i := 0; i < n; i++ {
		idx := int(cells[i])
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
