// Package headless runs sand worlds without a display, for batch runs,
// parameter sweeps and tests.
package headless

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"falling-sand/internal/config"
	"falling-sand/internal/sims/sand"
)

// Options describes a single headless run.
type Options struct {
	World sand.Config
	// Scene is applied after the reset. Its size, when set, overrides
	// World.Width and World.Height.
	Scene *config.Scene
	Ticks int

	Logger *log.Logger
}

// Result summarises a finished run.
type Result struct {
	Seed    int64
	Mode    sand.Mode
	Width   int
	Height  int
	Ticks   int
	Initial sand.Counts
	Final   sand.Counts
	// SettledAt is the first tick after which the grid never changed again,
	// or -1 if it was still moving when the run ended.
	SettledAt int
	Duration  time.Duration

	Grid *sand.Grid
}

// Conserved reports whether every material kept its cell count.
func (r Result) Conserved() bool { return r.Initial == r.Final }

// NewWorld builds the world described by opts with its scene applied.
func NewWorld(opts Options) *sand.World {
	cfg := opts.World
	if s := opts.Scene; s != nil {
		if s.Width > 0 {
			cfg.Width = s.Width
		}
		if s.Height > 0 {
			cfg.Height = s.Height
		}
	}
	w := sand.NewWithConfig(cfg)
	if opts.Scene != nil {
		opts.Scene.Apply(w)
	}
	return w
}

// Run advances a fresh world opts.Ticks times. It stops early with ctx's
// error when ctx is cancelled.
func Run(ctx context.Context, opts Options) (Result, error) {
	w := NewWorld(opts)
	size := w.Size()
	res := Result{
		Seed:      opts.World.Seed,
		Mode:      w.Mode(),
		Width:     size.W,
		Height:    size.H,
		Initial:   w.Counts(),
		SettledAt: 0,
	}

	prev := make([]uint8, len(w.Cells()))
	start := time.Now()
	for i := 0; i < opts.Ticks; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		copy(prev, w.Cells())
		w.Tick()
		if !bytes.Equal(prev, w.Cells()) {
			res.SettledAt = i + 1
		}
	}
	res.Duration = time.Since(start)
	res.Ticks = opts.Ticks
	res.Final = w.Counts()
	res.Grid = w.Grid().Clone()
	if res.SettledAt == opts.Ticks && opts.Ticks > 0 {
		res.SettledAt = -1
	}

	if opts.Logger != nil {
		opts.Logger.Debug("run finished",
			"seed", res.Seed,
			"mode", res.Mode,
			"ticks", res.Ticks,
			"settled_at", res.SettledAt,
			"elapsed", res.Duration,
		)
	}
	return res, nil
}
