package practice

import "math/rand/v2"

// Shuffle permutes s in place. Given a uniform source, every permutation is
// equally likely (Fisher-Yates via rand.Shuffle).
func Shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Sample returns k elements of s drawn without replacement. Given a uniform
// source, every k-subset is equally likely, in uniformly random order. The
// input slice is not modified. Panics if k > len(s).
func Sample[T any](rng *rand.Rand, s []T, k int) []T {
	if k > len(s) {
		panic("practice: sample size exceeds population")
	}
	pool := make([]T, len(s))
	copy(pool, s)

	// Partial Fisher-Yates: the first k positions end up uniformly drawn.
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
