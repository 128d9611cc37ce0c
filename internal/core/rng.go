package core

import "math/rand/v2"

// RNG wraps math/rand/v2 with deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillRow fills every word of the row with random bits.
func (r *RNG) FillRow(row Row) {
	for i := range row {
		row[i] = r.r.Uint64()
	}
}

// Source exposes the underlying generator.
func (r *RNG) Source() *rand.Rand { return r.r }
