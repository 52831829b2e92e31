package app

import "math/rand"

// shuffle returns a uniformly random permutation of in without touching
// the caller's slice. Empty and single-element inputs come back as a copy.
func shuffle[T any](rnd *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
