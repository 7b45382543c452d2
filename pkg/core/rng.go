package core

import (
	"math/rand"
)

// Rng is a deterministic random source shared by selection and mutation. It
// wraps a single seeded rand.Rand so that a fixed seed always yields the same
// draw sequence; it is never duplicated or reseeded during a run.
type Rng struct {
	r *rand.Rand
}

// NewRng creates a deterministic source from the given seed.
func NewRng(seed int64) *Rng {
	return &Rng{r: rand.New(rand.NewSource(seed))}
}

// Draw returns a uniform value in the half-open interval (0, 1]. The lower
// bound is excluded so a draw can never tie with a zero threshold: with
// mutation odds 0 no bit ever flips, and a selection draw always demands some
// probability mass.
func (r *Rng) Draw() float64 {
	return 1 - r.r.Float64()
}
