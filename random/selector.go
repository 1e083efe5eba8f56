package random

import (
	"golang.org/x/exp/rand"
)

// Source is the stream of uniform draws a Selector consumes. *rand.Rand
// satisfies it; tests substitute a fixed sequence.
type Source interface {
	Intn(n int) int
}

// Selector turns draws from a single seeded stream into weighted index
// choices and shuffles. Every consumer of randomness in a game shares one
// Selector so that a seed reproduces the whole game.
type Selector struct {
	src Source
}

// New returns a Selector over a PCG stream seeded with seed.
func New(seed int64) *Selector {
	return &Selector{src: rand.New(rand.NewSource(uint64(seed)))}
}

// NewWithSource returns a Selector over an arbitrary source.
func NewWithSource(src Source) *Selector {
	return &Selector{src: src}
}

// Weighted returns an index with probability proportional to its weight.
// Negative weights count as zero. When all weights are zero, index 0 is
// returned without consuming a draw.
func (s *Selector) Weighted(weights []int) int {
	total := 0
	sums := make([]int, len(weights))
	for i, w := range weights {
		total += max(0, w)
		sums[i] = total
	}

	if total == 0 {
		return 0
	}

	draw := s.src.Intn(total) + 1
	for i, sum := range sums {
		if draw <= sum {
			return i
		}
	}
	return len(weights) - 1
}

// ReverseWeighted favours low weights: each weight w is remapped to
// max(weights)-w before delegating to Weighted.
func (s *Selector) ReverseWeighted(weights []int) int {
	highest := 0
	for _, w := range weights {
		highest = max(highest, w)
	}

	reversed := make([]int, len(weights))
	for i, w := range weights {
		reversed[i] = max(0, highest-w)
	}
	return s.Weighted(reversed)
}

// Uniform picks one of n equally weighted options.
func (s *Selector) Uniform(n int) int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1
	}
	return s.Weighted(weights)
}

// Shuffle permutes n elements with a Fisher-Yates pass over the stream.
func (s *Selector) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.src.Intn(i + 1)
		swap(i, j)
	}
}
