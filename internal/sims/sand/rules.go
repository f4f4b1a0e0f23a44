package sand

import (
	"errors"
	"fmt"
	"strings"

	"falling-sand/internal/core"
)

// Mode selects which grid the transition rules consult while a tick scans.
type Mode uint8

const (
	// Sequential rules read the destination buffer, so cells scanned later in
	// a pass observe moves made earlier in the same pass.
	Sequential Mode = iota
	// Synchronous rules read the snapshot taken at the start of the tick and
	// reject targets already claimed by an earlier move.
	Synchronous
)

func (m Mode) String() string {
	switch m {
	case Synchronous:
		return "synchronous"
	default:
		return "sequential"
	}
}

// ErrUnknownMode is returned when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("sand: unknown mode")

// ParseMode resolves a case-insensitive mode name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sequential":
		return Sequential, nil
	case "synchronous", "sync":
		return Synchronous, nil
	default:
		return Sequential, fmt.Errorf("%w %q", ErrUnknownMode, name)
	}
}

// Tick advances live by one step. buffer is the write target of the scan and
// must mirror live on entry; on return both hold the post-tick state.
//
// Cells are visited top row first, left to right. The moving material is read
// from live, neighbours from the grid selected by mode, and every move is a
// swap inside buffer. A cell whose buffer content no longer matches live was
// displaced by an earlier move of this pass and is not visited again.
func Tick(live, buffer *Grid, rng *core.RNG, mode Mode) {
	if live == nil || buffer == nil || live.Size() != buffer.Size() {
		return
	}
	p := pass{read: buffer, dst: buffer, rng: rng}
	if mode == Synchronous {
		p.read = live
	}
	w, h := live.Width(), live.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := live.At(x, y)
			if buffer.At(x, y) != m {
				continue
			}
			p.apply(x, y, m)
		}
	}
	live.CopyFrom(buffer)
}

type pass struct {
	read *Grid
	dst  *Grid
	rng  *core.RNG
}

func (p *pass) apply(x, y int, m Material) {
	switch m {
	case Sand:
		p.sand(x, y)
	case Water:
		p.water(x, y)
	}
}

func (p *pass) sand(x, y int) {
	if !p.read.InBounds(x, y+1) {
		return
	}
	if p.canEnter(x, y+1, sinksSand) {
		p.swap(x, y, x, y+1)
		return
	}
	if !p.read.InBounds(x, y+2) {
		return
	}
	// Both cells of the diagonal must be open so a grain never settles on a
	// single loose grain below it.
	d := p.rng.Direction()
	for _, c := range [2]int{x - d, x + d} {
		if p.canEnter(c, y+1, sinksSand) && p.holds(c, y+2, sinksSand) {
			p.swap(x, y, c, y+1)
			return
		}
	}
}

func (p *pass) water(x, y int) {
	if !p.read.InBounds(x, y+1) {
		return
	}
	if p.canEnter(x, y+1, isAir) {
		p.swap(x, y, x, y+1)
		return
	}
	d := p.rng.Direction()
	near, far := x-d, x+d
	switch {
	case p.canEnter(near, y+1, isAir):
		p.swap(x, y, near, y+1)
	case p.canEnter(far, y+1, isAir):
		p.swap(x, y, far, y+1)
	case p.canEnter(near, y, isAir):
		p.swap(x, y, near, y)
	case p.canEnter(far, y, isAir):
		p.swap(x, y, far, y)
	}
}

func sinksSand(m Material) bool { return m.IsDisplaceableBy(Sand) }

func isAir(m Material) bool { return m == Air }

// holds reports whether the read grid has an accepted material at (x, y).
func (p *pass) holds(x, y int, accept func(Material) bool) bool {
	return p.read.InBounds(x, y) && accept(p.read.At(x, y))
}

// canEnter reports whether a mover may swap into (x, y). In synchronous mode a
// cell whose buffer already differs from the snapshot has been claimed.
func (p *pass) canEnter(x, y int, accept func(Material) bool) bool {
	if !p.holds(x, y, accept) {
		return false
	}
	return p.read == p.dst || p.dst.At(x, y) == p.read.At(x, y)
}

func (p *pass) swap(x, y, tx, ty int) {
	mover := p.dst.At(x, y)
	p.dst.Set(x, y, p.dst.At(tx, ty))
	p.dst.Set(tx, ty, mover)
}
