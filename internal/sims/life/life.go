// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"image/color"

	"falling-sand/internal/core"
)

const (
	dead  = 0
	alive = 1
)

var lifePalette = []color.RGBA{
	dead:  {R: 0, G: 0, B: 0, A: 255},
	alive: {R: 255, G: 255, B: 255, A: 255},
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg Config
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty board sized by cfg.
func NewWithConfig(cfg Config) *Life {
	cur := core.NewByteGrid(cfg.Width, cfg.Height)
	return &Life{cfg: cfg, cur: cur, nxt: core.NewByteGrid(cur.W, cur.H)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Palette maps dead cells to black and live cells to white.
func (l *Life) Palette() []color.RGBA { return lifePalette }

// Reset randomizes the board using the provided seed. A zero seed falls back
// to the configured one; a zero density leaves the board empty.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.cur.Clear()
	if l.cfg.Density <= 0 {
		return
	}
	rng := core.NewRNG(seed)
	cells := l.cur.Cells()
	for i := range cells {
		if rng.Float64() < l.cfg.Density {
			cells[i] = alive
		}
	}
}

// Clear kills every cell.
func (l *Life) Clear() { l.cur.Clear() }

// Paint brings the cell at (x, y) to life.
func (l *Life) Paint(x, y int) { l.cur.Set(x, y, alive) }

// Tools lists the single painting tool.
func (l *Life) Tools() []string { return []string{"cell"} }

// SelectTool accepts only the cell tool.
func (l *Life) SelectTool(index int) bool { return index == 0 }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := l.cur.Wrap(x+dx, y+dy)
					neighbors += int(l.cur.At(nx, ny))
				}
			}
			next := uint8(dead)
			if l.cur.At(x, y) == alive && (neighbors == 2 || neighbors == 3) || neighbors == 3 {
				next = alive
			}
			l.nxt.Set(x, y, next)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
