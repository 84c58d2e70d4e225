// SPDX-License-Identifier: MIT

package dist

import (
	"math"

	"github.com/katalvlaran/quantlab/special"
)

// BetaDist is the Beta(Alpha, Beta) distribution on [0, 1].
// Build it with NewBetaDist.
type BetaDist struct {
	Alpha, Beta float64
}

// NewBetaDist returns Beta(alpha, beta), or ErrDomain unless both shapes are finite and positive.
func NewBetaDist(alpha, beta float64) (BetaDist, error) {
	if !isFinite(alpha) || !isFinite(beta) || alpha <= 0 || beta <= 0 {
		return BetaDist{}, distErrorf(opNewBetaDist, ErrDomain)
	}

	return BetaDist{Alpha: alpha, Beta: beta}, nil
}

// PDF returns the density at x; 0 outside [0, 1].
// At the endpoints the density may be +Inf (shape < 1).
func (b BetaDist) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	if x == 0 || x == 1 {
		return math.Pow(x, b.Alpha-1) * math.Pow(1-x, b.Beta-1) / special.Beta(b.Alpha, b.Beta)
	}

	return math.Exp((b.Alpha-1)*math.Log(x) + (b.Beta-1)*math.Log1p(-x) - special.LnBeta(b.Alpha, b.Beta))
}

// CDF returns P(X ≤ x) = I_x(α, β), clamped to 0 below 0 and 1 above 1.
func (b BetaDist) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	v, err := special.RegIncBeta(x, b.Alpha, b.Beta)
	if err != nil {
		return math.NaN()
	}

	return v
}

// Mean returns α/(α+β).
func (b BetaDist) Mean() float64 {
	return b.Alpha / (b.Alpha + b.Beta)
}

// Variance returns αβ/((α+β)²(α+β+1)).
func (b BetaDist) Variance() float64 {
	s := b.Alpha + b.Beta
	return b.Alpha * b.Beta / (s * s * (s + 1))
}
