package tests

import (
	"math/rand/v2"
	"testing"
	"time"
)

// Randomizer feeds property-style tests. The seed is logged so a failing run
// can be replayed.
type Randomizer struct {
	r *rand.Rand
}

func NewRandomizer(t testing.TB) Randomizer {
	t.Helper()

	seed := uint64(time.Now().UnixNano()) //nolint:gosec // for tests
	t.Logf("randomizer seed: %d", seed)

	return Randomizer{r: rand.New(rand.NewPCG(seed, seed>>1))} //nolint:gosec // for tests
}

func (r Randomizer) Intn(n int) int {
	return r.r.IntN(n)
}

func (r Randomizer) Bool() bool {
	return r.r.IntN(2) == 0 //nolint:mnd // skip
}

// Between returns a float in [lo, hi).
func (r Randomizer) Between(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}
