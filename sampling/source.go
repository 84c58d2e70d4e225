// SPDX-License-Identifier: MIT

package sampling

import "math/rand/v2"

// Source yields uniform variates in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// DefaultSeed replaces a zero seed so that the zero value still gives a fixed,
// reproducible stream.
const DefaultSeed uint64 = 1

// SplitMix64 constants.
const (
	golden = 0x9e3779b97f4a7c15
	mixA   = 0xbf58476d1ce4e5b9
	mixB   = 0x94d049bb133111eb
)

// NewSource returns an isolated PCG-backed generator seeded from seed.
// seed == 0 means DefaultSeed.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewPCG(seed, mix(seed)))
}

// DeriveSource returns an independent deterministic stream for (seed, stream).
// Use it to hand separate generators to workers or repeated runs.
func DeriveSource(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return NewSource(mix(seed ^ (stream + golden)))
}

// mix is the SplitMix64 finalizer.
func mix(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * mixA
	x = (x ^ (x >> 27)) * mixB

	return x ^ (x >> 31)
}
