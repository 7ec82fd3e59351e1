package quiz

import "math/rand/v2"

// Shuffle permutes items in place with a Fisher-Yates pass and returns the
// same slice. A nil rng uses the package-level source.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	for i := 0; i < len(items)-1; i++ {
		j := i + intN(rng, len(items)-i)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
