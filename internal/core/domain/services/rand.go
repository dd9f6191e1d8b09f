package services

import "math/rand/v2"

// Rand is the source of randomness injected into generation policies.
// Separating the source from the policies keeps batch-size, item-count and
// per-item draws deterministic under test: inject a source replaying a fixed
// sequence instead of relying on global random state.
type Rand interface {
	// IntN returns a uniform random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// systemRand backs Rand with the top-level math/rand/v2 generator,
// which is safe for concurrent use.
type systemRand struct{}

func (systemRand) IntN(n int) int {
	return rand.IntN(n)
}

// SystemRand returns the production randomness source.
func SystemRand() Rand {
	return systemRand{}
}
