package ui

import "image"

// BrushRect returns the screen rectangle covered by a square brush of the
// given radius centred on grid cell (cx, cy).
func BrushRect(cx, cy, radius, scale int) image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	radius = max(radius, 0)
	return image.Rect(
		(cx-radius)*scale,
		(cy-radius)*scale,
		(cx+radius+1)*scale,
		(cy+radius+1)*scale,
	)
}
