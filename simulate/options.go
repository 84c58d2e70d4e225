// SPDX-License-Identifier: MIT

package simulate

import "github.com/katalvlaran/quantlab/sampling"

// DefaultSampleSize is the number of draws averaged into each mean.
const DefaultSampleSize = 30

const (
	panicSampleSizeInvalid = "simulate: WithSampleSize: n must be ≥ 1"
	panicSourceNil         = "simulate: WithSource: src must be non-nil"
)

// Option configures a CLT engine.
type Option func(*config)

type config struct {
	sampleSize int
	src        sampling.Source
}

// WithSampleSize sets the draws per mean. Panics if n < 1.
func WithSampleSize(n int) Option {
	if n < 1 {
		panic(panicSampleSizeInvalid)
	}

	return func(c *config) { c.sampleSize = n }
}

// WithSeed gives the engine its own source seeded from seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.src = sampling.NewSource(seed) }
}

// WithSource injects a caller-owned source. Panics if src is nil.
func WithSource(src sampling.Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(c *config) { c.src = src }
}

func gatherOptions(opts []Option) config {
	c := config{sampleSize: DefaultSampleSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.src == nil {
		c.src = sampling.NewSource(sampling.DefaultSeed)
	}

	return c
}
