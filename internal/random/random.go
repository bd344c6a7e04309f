package random

//go:generate mockgen -source=random.go -destination=mocks/random.go -package=mocks

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random provides random number generation that can be mocked for testing.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// Source implements Random on top of a PCG generator.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded with seed. A zero seed picks one from the clock.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a random int in [0, n), or 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
