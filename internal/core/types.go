package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider is implemented by sims whose cell values index a color table.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Painter is implemented by sims that accept pointer-driven cell authoring.
// Tools lists the selectable things Paint can stamp; SelectTool picks one by
// index and reports whether the index was valid.
type Painter interface {
	Paint(x, y int)
	Tools() []string
	SelectTool(index int) bool
}

// Clearer is implemented by sims that can be wiped to their empty state.
type Clearer interface {
	Clear()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
