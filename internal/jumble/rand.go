package jumble

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source the engine draws from.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// LockedRand makes a *rand.Rand safe for concurrent use.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand wraps r. A nil r is replaced by a randomly seeded PCG.
func NewLockedRand(r *rand.Rand) *LockedRand {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LockedRand{r: r}
}

// NewSeededRand returns a LockedRand with a fixed seed, for reproducible runs.
func NewSeededRand(seed uint64) *LockedRand {
	return NewLockedRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *LockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
