// SPDX-License-Identifier: MIT

package describe

import (
	"math"

	"github.com/montanaflynn/stats"
)

const (
	opMedian     = "Median"
	opPercentile = "Percentile"
	opMinMax     = "MinMax"
)

// Median returns the middle value of xs, or the mean of the two middle values
// for an even-sized sample. xs is not reordered.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return math.NaN(), describeErrorf(opMedian, ErrEmptySample)
	}
	// stats.Median sorts a copy.
	m, err := stats.Median(xs)
	if err != nil {
		return math.NaN(), describeErrorf(opMedian, err)
	}

	return m, nil
}

// Percentile returns the p-th percentile of xs, p ∈ (0, 100], using the
// nearest-rank rule with averaging between ranks. xs is not reordered.
//
// Errors:
//   - ErrEmptySample for an empty sample.
//   - ErrDomain when p ∉ (0, 100] or the rank falls below the first observation.
func Percentile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return math.NaN(), describeErrorf(opPercentile, ErrEmptySample)
	}
	if math.IsNaN(p) || p <= 0 || p > 100 {
		return math.NaN(), describeErrorf(opPercentile, ErrDomain)
	}
	v, err := stats.Percentile(xs, p)
	if err != nil {
		return math.NaN(), describeErrorf(opPercentile, ErrDomain)
	}

	return v, nil
}

// MinMax returns the smallest and largest observation.
func MinMax(xs []float64) (lo, hi float64, err error) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN(), describeErrorf(opMinMax, ErrEmptySample)
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	return lo, hi, nil
}
