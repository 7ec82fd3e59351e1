package quiz

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// TestShufflePreservesElements verifies the output is a permutation of the input.
func TestShufflePreservesElements(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 0; n <= 12; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i * 7
		}
		original := slices.Clone(items)
		shuffled := Shuffle(rng, items)
		if len(shuffled) != n {
			t.Fatalf("n=%d: expected length %d, got %d", n, n, len(shuffled))
		}
		sorted := slices.Clone(shuffled)
		slices.Sort(sorted)
		if !slices.Equal(sorted, original) {
			t.Fatalf("n=%d: expected same elements, got %v", n, shuffled)
		}
	}
}

// TestShuffleShortInputsUnchanged verifies n <= 1 is returned as is.
func TestShuffleShortInputsUnchanged(t *testing.T) {
	if got := Shuffle[string](nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	single := []string{"only"}
	if got := Shuffle(nil, single); len(got) != 1 || got[0] != "only" {
		t.Fatalf("expected single element unchanged, got %v", got)
	}
}

// TestShuffleInPlace verifies the input slice itself is permuted.
func TestShuffleInPlace(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	out := Shuffle(rand.New(rand.NewPCG(3, 4)), items)
	if &out[0] != &items[0] {
		t.Fatalf("expected shuffle to reuse the input backing array")
	}
}

// TestShuffleCoversAllPositions verifies every element reaches every slot.
func TestShuffleCoversAllPositions(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	const n = 4
	var seen [n][n]int
	for trial := 0; trial < 4000; trial++ {
		items := []int{0, 1, 2, 3}
		Shuffle(rng, items)
		for pos, value := range items {
			seen[value][pos]++
		}
	}
	for value := 0; value < n; value++ {
		for pos := 0; pos < n; pos++ {
			if seen[value][pos] < 700 {
				t.Fatalf("value %d landed at position %d only %d times", value, pos, seen[value][pos])
			}
		}
	}
}
