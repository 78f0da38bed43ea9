package coinrush

import "math/rand"

// RNG wraps a seeded source with the bounded draws the spawner needs.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic generator.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))} //#nosec G404 -- gameplay randomness, not security
}

// Intn returns a value in [0, n). Ranges narrower than 1 are widened to 1,
// so a field smaller than an entity plus its margins still yields a position.
func (g *RNG) Intn(n int) int {
	if n < 1 {
		n = 1
	}
	return g.r.Intn(n)
}

// Between returns a value in the inclusive range [lo, hi].
func (g *RNG) Between(lo, hi int) int {
	return lo + g.Intn(hi-lo+1)
}

// Sign returns -1 or 1 with equal probability.
func (g *RNG) Sign() int {
	if g.Bool() {
		return 1
	}
	return -1
}

// Bool returns a fair coin flip.
func (g *RNG) Bool() bool {
	return g.r.Intn(2) == 0
}

// Int63 returns a non-negative 63-bit value, used to reseed follow-up runs.
func (g *RNG) Int63() int64 {
	return g.r.Int63()
}
