// SPDX-License-Identifier: MIT

// Package describe computes descriptive statistics over a finite sample.
//
// The core trio Mean, Variance and StdDev is what every t-statistic in this
// module is built from. Variance uses the two-pass mean-then-deviations method
// with Bessel's correction, so it never suffers the catastrophic cancellation of
// the E[X²]−E[X]² shortcut.
//
// Beyond the core, the package offers the statistics shown by a typical
// "descriptive statistics explorer": Median, Percentile, a histogram-based
// Mode, Skewness, Kurtosis, Histogram and a one-shot Summarize.
//
// Inputs are never mutated; order statistics work on sorted copies.
//
// Errors:
//
//	ErrEmptySample      - the sample has no observations.
//	ErrInsufficientData - the statistic needs more observations (variance n ≥ 2,
//	                      skewness n ≥ 3, kurtosis n ≥ 4).
//	ErrDomain           - a parameter is invalid (bins ≤ 0, percentile ∉ (0,100]).
package describe
