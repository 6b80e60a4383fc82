package randstr

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source provides uniformly distributed integers.
// It does not need to be cryptographically secure.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// defaultSource uses the runtime-seeded global generator
var defaultSource Source = globalSource{}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// lockedSource wraps a *rand.Rand, which is not safe for concurrent use
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewSource returns a non-cryptographic source seeded from the clock
func NewSource() Source {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

// NewSeededSource returns a deterministic source. Two sources created with
// the same seed produce the same sequence.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo n. Useful for snapshot tests.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewSequenceSource creates a SequenceSource. An empty list always yields 0.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// IntN implements Source
func (s *SequenceSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.pos%len(s.values)]
	s.pos++

	v %= n
	if v < 0 {
		v += n
	}
	return v
}
