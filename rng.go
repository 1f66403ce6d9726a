package vecmat

import (
	"math/rand"

	"github.com/vecmat/vecmat/internal/numeric"
)

// RNG encapsulates the random number generator and seed used for
// random vector and matrix construction. The generator is injected
// into every random constructor rather than living in package state,
// which keeps construction deterministic and testable.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// RandomValue returns one uniformly distributed value of the element
// type: full-range for integer types, [0, 1) for float types.
func RandomValue[T Element](r *RNG) T {
	if numeric.IsFloat[T]() {
		return T(r.rand.Float64())
	}
	return T(r.rand.Uint64())
}

func randomFill[T Element](dst []T, r *RNG) {
	for i := range dst {
		dst[i] = RandomValue[T](r)
	}
}
