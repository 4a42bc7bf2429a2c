package cast

import (
	"math/rand/v2"
	"sync"
)

// CoinSource yields independent fair coin flips.
type CoinSource interface {
	// Flip returns true for heads with probability 1/2.
	Flip() bool
}

// globalSource draws from the runtime-seeded top-level math/rand/v2
// generator, which is safe for concurrent use and never repeats across runs.
type globalSource struct{}

func (globalSource) Flip() bool {
	return rand.IntN(2) == 1
}

// seededSource is a reproducible source. The mutex makes a single
// seeded generator safe to share between goroutines.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *seededSource) Flip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(2) == 1
}
