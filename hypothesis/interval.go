// SPDX-License-Identifier: MIT

package hypothesis

import (
	"math"

	"github.com/katalvlaran/quantlab/describe"
	"github.com/katalvlaran/quantlab/dist"
)

// Interval is a two-sided confidence interval for a mean.
type Interval struct {
	Lo       float64 `json:"lo" yaml:"lo"`
	Hi       float64 `json:"hi" yaml:"hi"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Margin   float64 `json:"margin" yaml:"margin"`
	Level    float64 `json:"level" yaml:"level"`
	Critical float64 `json:"critical" yaml:"critical"`
}

// Contains reports whether x lies in [Lo, Hi].
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lo && x <= iv.Hi
}

// MeanCI returns x̄ ± t_{(1+level)/2, n−1} · s/√n.
// A constant sample yields a zero-width interval.
//
// Errors:
//   - ErrBadLevel when level ∉ (0, 1).
//   - describe.ErrInsufficientData for n < 2.
func MeanCI(xs []float64, level float64) (Interval, error) {
	if math.IsNaN(level) || level <= 0 || level >= 1 {
		return Interval{}, hypothesisErrorf(opMeanCI, ErrBadLevel)
	}
	se, err := describe.StdErr(xs)
	if err != nil {
		return Interval{}, hypothesisErrorf(opMeanCI, err)
	}
	m, _ := describe.Mean(xs)
	crit, err := dist.TQuantile((1+level)/2, float64(len(xs)-1))
	if err != nil {
		return Interval{}, hypothesisErrorf(opMeanCI, err)
	}
	margin := crit * se

	return Interval{
		Lo:       m - margin,
		Hi:       m + margin,
		Mean:     m,
		Margin:   margin,
		Level:    level,
		Critical: crit,
	}, nil
}
