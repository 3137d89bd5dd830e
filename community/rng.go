// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: deterministic random streams shared by the detectors.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Fit owns its own stream.

package community

import "math/rand"

// DefaultSeed is the seed detectors use when none is configured, and the
// replacement for a zero seed.
const DefaultSeed int64 = 123

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
// If rng==nil, the DefaultSeed stream is used.
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if rng == nil {
		rng = NewRand(0)
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns 0..n-1 shuffled with rng.
func Perm(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(p, rng)

	return p
}

// Choice returns a uniformly chosen element of a, which must be non-empty.
func Choice(a []int, rng *rand.Rand) int {
	if len(a) == 1 {
		return a[0]
	}
	if rng == nil {
		rng = NewRand(0)
	}

	return a[rng.Intn(len(a))]
}
