package system

import (
	"math/rand"
	"sync"
	"time"
)

// Random is the session's shared random source. Every call takes the lock so
// it may be shared between systems.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom seeds from seed, or from the clock when seed is 0.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Range returns an integer in [lo, hi).
func (r *Random) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.Intn(hi-lo)
}
