package spaced_repetition

import (
	"math/rand"
	"sync"
)

// Source supplies uniform values in [0, 1) for interval jitter
type Source interface {
	Float64() float64
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// NoJitter pins the jitter multiplier to exactly 1.0
var NoJitter Source = fixedSource(0.5)

// lockedSource makes a *rand.Rand safe to share between goroutines
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// NewSeededSource returns a reproducible Source
func NewSeededSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}
