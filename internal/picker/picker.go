// Package picker selects one element uniformly at random from a candidate list.
// Production code uses the process-wide random source; tests and
// RANDOM_SEED builds use a seeded, reproducible one.
package picker

import "math/rand/v2"

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSource returns a non-deterministic Source backed by the runtime's
// automatically seeded generator. It is safe for concurrent use.
func NewSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic Source: two sources built from the
// same seed yield the same sequence. It is not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pick returns one element of items chosen with uniform probability.
// ok is false when items is empty.
func Pick[T any](src Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[src.IntN(len(items))], true
}
