//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type brushProvider interface {
	BrushRadius() int
}

// Overlay outlines the cells the next paint stroke will cover.
type Overlay struct {
	sim     core.Sim
	scale   int
	visible bool
	cx, cy  int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1)}
}

// Update tracks the cursor in grid coordinates.
func (o *Overlay) Update() {
	mx, my := ebiten.CursorPosition()
	size := o.sim.Size()
	o.cx, o.cy = mx/o.scale, my/o.scale
	o.visible = mx >= 0 && my >= 0 && o.cx < size.W && o.cy < size.H
}

// Draw renders the brush outline onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	radius := 0
	if p, ok := o.sim.(brushProvider); ok {
		radius = p.BrushRadius()
	}
	r := BrushRect(o.cx, o.cy, radius, o.scale)
	vector.StrokeRect(screen,
		float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
		1, color.RGBA{R: 230, G: 230, B: 240, A: 200}, false)
}
