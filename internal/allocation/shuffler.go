package allocation

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type lockedShuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewShuffler returns a time-seeded Shuffler that is safe for concurrent use.
func NewShuffler() Shuffler {
	return NewSeededShuffler(uint64(time.Now().UnixNano()))
}

// NewSeededShuffler returns a concurrency-safe Shuffler with a fixed seed, so
// a sequence of shuffles can be reproduced.
func NewSeededShuffler(seed uint64) Shuffler {
	return &lockedShuffler{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle performs a Fisher-Yates shuffle.
func (s *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(n, swap)
}
