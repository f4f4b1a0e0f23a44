package app

import "falling-sand/internal/core"

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

// CellAt maps a cursor position in screen pixels to grid coordinates.
// ok is false when the position lies outside the grid.
func CellAt(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	return x, y, x < size.W && y < size.H
}

// eraserTool names the tool placed last in the hotkey order.
const eraserTool = "air"

// ToolHotkeys orders tool indices for the digit keys 1..9: every tool in
// registration order, then the eraser.
func ToolHotkeys(tools []string) []int {
	order := make([]int, 0, len(tools))
	eraser := -1
	for i, name := range tools {
		if name == eraserTool {
			eraser = i
			continue
		}
		order = append(order, i)
	}
	if eraser >= 0 {
		order = append(order, eraser)
	}
	if len(order) > 9 {
		order = order[:9]
	}
	return order
}
