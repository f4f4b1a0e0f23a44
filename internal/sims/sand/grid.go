package sand

import "falling-sand/internal/core"

// Grid is a fixed-size 2D store of materials addressed by (column, row) with
// row 0 at the top. Out-of-range reads return Air and writes are ignored.
type Grid struct {
	cells *core.ByteGrid
}

// Counts tallies cells per material, indexed by Material.
type Counts [materialCount]int

// Total returns the number of counted cells.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// NewGrid allocates a width×height grid filled with Air.
func NewGrid(width, height int) *Grid {
	return &Grid{cells: core.NewByteGrid(width, height)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cells.W, H: g.cells.H} }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// At returns the material at (x, y).
func (g *Grid) At(x, y int) Material { return Material(g.cells.At(x, y)) }

// Set stores m at (x, y).
func (g *Grid) Set(x, y int, m Material) { g.cells.Set(x, y, uint8(m)) }

// Fill sets every cell to m.
func (g *Grid) Fill(m Material) { g.cells.Fill(uint8(m)) }

// CopyFrom copies the contents of src, which must have the same dimensions.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src == nil {
		return false
	}
	return g.cells.CopyFrom(src.cells)
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width(), g.Height())
	c.CopyFrom(g)
	return c
}

// Bytes exposes the row-major backing slice of material values.
func (g *Grid) Bytes() []uint8 { return g.cells.Cells() }

// Counts tallies the materials currently stored in the grid.
func (g *Grid) Counts() Counts {
	var c Counts
	for _, v := range g.cells.Cells() {
		if Material(v).Valid() {
			c[v]++
		}
	}
	return c
}
