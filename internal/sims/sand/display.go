package sand

import "image/color"

var materialPalette = [materialCount]color.RGBA{
	Air:   {R: 0, G: 0, B: 0, A: 255},
	Sand:  {R: 253, G: 249, B: 0, A: 255},
	Water: {R: 0, G: 121, B: 241, A: 255},
}

// Color returns the display color of m. Unknown values render as Air.
func (m Material) Color() color.RGBA {
	if !m.Valid() {
		return materialPalette[Air]
	}
	return materialPalette[m]
}

// Palette exposes the color table indexed by material value.
func (w *World) Palette() []color.RGBA {
	return materialPalette[:]
}
