// SPDX-License-Identifier: MIT
// Package: describe
//
// Purpose:
//   - Location and spread of a sample: Mean, Variance, StdDev, StdErr.
//   - Shape of a sample: Skewness (adjusted Fisher–Pearson G1) and
//     Kurtosis (sample excess kurtosis G2).
//
// Determinism:
//   - Fixed left-to-right accumulation; no randomness, no allocation.

package describe

import "math"

// Operation name constants for error wrapping.
const (
	opMean     = "Mean"
	opVariance = "Variance"
	opStdDev   = "StdDev"
	opStdErr   = "StdErr"
	opSkewness = "Skewness"
	opKurtosis = "Kurtosis"
)

// Minimum sample sizes for each statistic.
const (
	minVarianceN = 2
	minSkewnessN = 3
	minKurtosisN = 4
)

// Mean returns the arithmetic mean of xs.
//
// Errors:
//   - ErrEmptySample when len(xs) == 0.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return math.NaN(), describeErrorf(opMean, ErrEmptySample)
	}

	return mean(xs), nil
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	if !math.IsInf(sum, 0) {
		return sum / float64(len(xs))
	}

	// The plain sum overflowed; a running mean stays within [min, max].
	var m float64
	for i, x := range xs {
		m += (x - m) / float64(i+1)
	}

	return m
}

// Variance returns the sample variance Σ(x−x̄)²/(n−1).
//
// Implementation:
//   - Stage 1: require n ≥ 2.
//   - Stage 2: compute the mean in a first pass.
//   - Stage 3: sum squared deviations in a second pass, with the
//     compensation term Σ(x−x̄) that cancels rounding in the mean.
//
// The result is never negative.
//
// Errors:
//   - ErrInsufficientData when len(xs) < 2.
func Variance(xs []float64) (float64, error) {
	if len(xs) < minVarianceN {
		return math.NaN(), describeErrorf(opVariance, ErrInsufficientData)
	}

	return variance(xs, mean(xs)), nil
}

// variance is the corrected two-pass algorithm; len(xs) ≥ 2.
// It overflows to +Inf only when the variance itself exceeds float64.
func variance(xs []float64, m float64) float64 {
	v, exp := scaledVariance(xs, m)

	return math.Ldexp(v, 2*exp)
}

// scaledVariance returns v and exp with variance = v·2^(2·exp).
//
// Deviations are taken as x/2 − m/2, which cannot overflow, and scaled by a
// power of two so that squaring them cannot overflow either; both steps are
// exact for normal floats.
func scaledVariance(xs []float64, m float64) (v float64, exp int) {
	scale, exp := deviationScale(xs, m)
	if scale == 0 {
		return 0, 0
	}

	var ss, comp, d float64
	for _, x := range xs {
		d = (x*0.5 - m*0.5) * scale
		ss += d * d
		comp += d
	}
	n := float64(len(xs))
	v = (ss - comp*comp/n) / (n - 1)
	if v < 0 {
		return 0, 0
	}

	return v, exp
}

// deviationScale returns 2^−e and the exponent e+1 such that every halved
// deviation times 2^−e lies in (−1, 1). A zero scale means no spread.
func deviationScale(xs []float64, m float64) (scale float64, exp int) {
	var peak float64
	for _, x := range xs {
		peak = math.Max(peak, math.Abs(x*0.5-m*0.5))
	}
	if peak == 0 {
		return 0, 0
	}
	_, e := math.Frexp(peak)

	return math.Ldexp(1, -e), e + 1
}

// StdDev returns √Variance(xs).
func StdDev(xs []float64) (float64, error) {
	if len(xs) < minVarianceN {
		return math.NaN(), describeErrorf(opStdDev, ErrInsufficientData)
	}

	return stdDev(xs, mean(xs)), nil
}

// stdDev takes the root before undoing the scaling, so it stays finite
// even when the variance overflows.
func stdDev(xs []float64, m float64) float64 {
	v, exp := scaledVariance(xs, m)

	return math.Ldexp(math.Sqrt(v), exp)
}

// StdErr returns the standard error of the mean, StdDev/√n.
func StdErr(xs []float64) (float64, error) {
	sd, err := StdDev(xs)
	if err != nil {
		return math.NaN(), describeErrorf(opStdErr, ErrInsufficientData)
	}

	return sd / math.Sqrt(float64(len(xs))), nil
}

// centralMoments returns the population central moments m2, m3, m4 of the
// deviations after power-of-two scaling. Only the scale-free ratios
// m3/m2^{3/2} and m4/m2² are meaningful to callers.
func centralMoments(xs []float64, m float64) (m2, m3, m4 float64) {
	scale, _ := deviationScale(xs, m)
	if scale == 0 {
		return 0, 0, 0
	}

	var d, d2 float64
	for _, x := range xs {
		d = (x*0.5 - m*0.5) * scale
		d2 = d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	n := float64(len(xs))

	return m2 / n, m3 / n, m4 / n
}

// Skewness returns the adjusted Fisher–Pearson coefficient
//
//	G1 = √(n(n−1))/(n−2) · m3/m2^{3/2}
//
// A constant sample has skewness 0.
//
// Errors:
//   - ErrInsufficientData when len(xs) < 3.
func Skewness(xs []float64) (float64, error) {
	if len(xs) < minSkewnessN {
		return math.NaN(), describeErrorf(opSkewness, ErrInsufficientData)
	}
	m2, m3, _ := centralMoments(xs, mean(xs))
	if m2 == 0 {
		return 0, nil
	}
	n := float64(len(xs))

	return math.Sqrt(n*(n-1)) / (n - 2) * m3 / math.Pow(m2, 1.5), nil
}

// Kurtosis returns the sample excess kurtosis
//
//	G2 = (n−1)/((n−2)(n−3)) · ((n+1)·g2 + 6),  g2 = m4/m2² − 3
//
// which is 0 in expectation for normal data. A constant sample has kurtosis 0.
//
// Errors:
//   - ErrInsufficientData when len(xs) < 4.
func Kurtosis(xs []float64) (float64, error) {
	if len(xs) < minKurtosisN {
		return math.NaN(), describeErrorf(opKurtosis, ErrInsufficientData)
	}
	m2, _, m4 := centralMoments(xs, mean(xs))
	if m2 == 0 {
		return 0, nil
	}
	n := float64(len(xs))
	g2 := m4/(m2*m2) - 3

	return (n - 1) / ((n - 2) * (n - 3)) * ((n+1)*g2 + 6), nil
}
