package sand

import "falling-sand/internal/core"

// World owns the live grid, the destination buffer and the random source of
// one falling-sand simulation. It is not safe for concurrent use; callers
// place cells only between ticks.
type World struct {
	cfg Config

	live   *Grid
	buffer *Grid
	rng    *core.RNG

	mode     Mode
	selected Material
	brush    int
	ticks    uint64
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World filled with Air.
func NewWithConfig(cfg Config) *World {
	live := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = live.Width(), live.Height()
	selected := cfg.Material
	if !selected.Valid() {
		selected = Sand
	}
	return &World{
		cfg:      cfg,
		live:     live,
		buffer:   NewGrid(cfg.Width, cfg.Height),
		rng:      core.NewRNG(cfg.Seed),
		mode:     cfg.Mode,
		selected: selected,
		brush:    clampBrush(cfg.Brush),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.live.Size() }

// Cells exposes the live grid as material values for renderers.
func (w *World) Cells() []uint8 { return w.live.Bytes() }

// Grid exposes the live grid. Writes must go through Place to keep the
// destination buffer in step.
func (w *World) Grid() *Grid { return w.live }

// Ticks returns the number of ticks since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Counts tallies the live grid.
func (w *World) Counts() Counts { return w.live.Counts() }

// Config returns the configuration a World of the same shape and settings
// would be built from.
func (w *World) Config() Config {
	cfg := w.cfg
	cfg.Mode = w.mode
	cfg.Material = w.selected
	cfg.Brush = w.brush
	return cfg
}

// Mode reports the active update mode.
func (w *World) Mode() Mode { return w.mode }

// SetMode switches the update mode for subsequent ticks.
func (w *World) SetMode(m Mode) { w.mode = m }

// Reset clears the world and reseeds the random source. A zero seed falls
// back to the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Reseed(seed)
	w.Clear()
	w.ticks = 0
}

// Clear fills both grids with Air.
func (w *World) Clear() {
	w.live.Fill(Air)
	w.buffer.Fill(Air)
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.Tick() }

// Tick runs one full scan and reconciles the buffer into the live grid.
func (w *World) Tick() {
	Tick(w.live, w.buffer, w.rng, w.mode)
	w.ticks++
}

// Place overwrites the cell at (x, y) with m, ignoring density rules.
// Out-of-range coordinates and unknown materials are ignored.
func (w *World) Place(x, y int, m Material) {
	if !m.Valid() || !w.live.InBounds(x, y) {
		return
	}
	w.live.Set(x, y, m)
	w.buffer.Set(x, y, m)
}

// FillRect places m over the w×h rectangle at (x, y), clipped to the grid.
func (w *World) FillRect(x, y, width, height int, m Material) {
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			w.Place(xx, yy, m)
		}
	}
}

// Brush places m over the square of the given radius centred on (cx, cy).
func (w *World) Brush(cx, cy, radius int, m Material) {
	radius = clampBrush(radius)
	w.FillRect(cx-radius, cy-radius, 2*radius+1, 2*radius+1, m)
}

// Selected returns the material stamped by Paint.
func (w *World) Selected() Material { return w.selected }

// SetSelected changes the material stamped by Paint.
func (w *World) SetSelected(m Material) {
	if m.Valid() {
		w.selected = m
	}
}

// BrushRadius returns the radius used by Paint.
func (w *World) BrushRadius() int { return w.brush }

// SetBrushRadius changes the radius used by Paint, clamped to [0, MaxBrush].
func (w *World) SetBrushRadius(r int) { w.brush = clampBrush(r) }

// Paint stamps the selected material with the current brush at (x, y).
func (w *World) Paint(x, y int) { w.Brush(x, y, w.brush, w.selected) }

// Tools lists the materials Paint can stamp, indexed by material value.
func (w *World) Tools() []string {
	names := make([]string, 0, materialCount)
	for _, m := range Materials() {
		names = append(names, m.String())
	}
	return names
}

// SelectTool selects the material with the given index.
func (w *World) SelectTool(index int) bool {
	if index < 0 || index >= int(materialCount) {
		return false
	}
	w.selected = Material(index)
	return true
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
