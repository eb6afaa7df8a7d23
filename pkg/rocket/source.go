package rocket

import "math/rand/v2"

// Source supplies the randomness used during assembly.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// Pick returns an index into weights, chosen with probability
	// proportional to its weight. Weights are positive and non-empty.
	Pick(weights []int) int
}

type pcgSource struct {
	rng *rand.Rand
}

// NewSource returns a PCG-backed Source. Equal seeds yield equal sequences.
func NewSource(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (s *pcgSource) Float64() float64 {
	return s.rng.Float64()
}

// Pick draws uniformly over the total weight and returns the first index
// whose cumulative weight exceeds the draw.
func (s *pcgSource) Pick(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	draw := s.rng.IntN(total)
	cum := 0
	for i, w := range weights {
		cum += w
		if draw < cum {
			return i
		}
	}
	return len(weights) - 1
}
