package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the sequence from seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Direction returns -1 or +1 with equal probability.
func (r *RNG) Direction() int {
	if r.r.IntN(2) == 0 {
		return -1
	}
	return 1
}

// IntN returns a value in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }
