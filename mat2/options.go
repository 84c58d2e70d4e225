// SPDX-License-Identifier: MIT

package mat2

import "math"

// DefaultEpsilon is the tolerance for singularity and degenerate-vector checks.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "mat2: WithEpsilon: eps must be finite, non-negative"

// Option configures a single call. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	eps float64
}

// WithEpsilon overrides DefaultEpsilon.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

func gatherOptions(opts []Option) options {
	o := options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
