package rocket

import (
	"math"
	"testing"
)

func TestPickFollowsWeights(t *testing.T) {
	src := NewSource(2024)
	const trials = 10000

	heavy := 0
	for range trials {
		if src.Pick([]int{10, 1}) == 0 {
			heavy++
		}
	}

	got := float64(heavy) / trials
	want := 10.0 / 11.0
	if math.Abs(got-want) > 0.015 {
		t.Errorf("heavy part chosen %.4f of the time, want %.4f ± 0.015", got, want)
	}
}

func TestPickSingleCandidate(t *testing.T) {
	src := NewSource(1)
	for range 100 {
		if got := src.Pick([]int{7}); got != 0 {
			t.Fatalf("Pick([7]) = %d, want 0", got)
		}
	}
}

func TestPickCoversAllIndices(t *testing.T) {
	src := NewSource(5)
	seen := make([]bool, 4)
	for range 1000 {
		seen[src.Pick([]int{1, 1, 1, 1})] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("index %d never picked", i)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	src := NewSource(11)
	for range 1000 {
		if u := src.Float64(); u < 0 || u >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", u)
		}
	}
}

func TestNewSourceIsDeterministic(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for i := range 50 {
		if x, y := a.Pick([]int{3, 2, 5}), b.Pick([]int{3, 2, 5}); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}
