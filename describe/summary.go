// SPDX-License-Identifier: MIT

package describe

import "math"

const opSummarize = "Summarize"

// Summary collects every descriptive statistic of one sample.
//
// Statistics that need more observations than the sample has are left zero and
// their Has* flag is false: Variance, StdDev and StdErr need n ≥ 2, Skewness
// n ≥ 3, Kurtosis n ≥ 4.
type Summary struct {
	N        int     `json:"n" yaml:"n"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Median   float64 `json:"median" yaml:"median"`
	Mode     float64 `json:"mode" yaml:"mode"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
	Q1       float64 `json:"q1" yaml:"q1"`
	Q3       float64 `json:"q3" yaml:"q3"`
	Variance float64 `json:"variance" yaml:"variance"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
	StdErr   float64 `json:"std_err" yaml:"std_err"`
	Skewness float64 `json:"skewness" yaml:"skewness"`
	Kurtosis float64 `json:"kurtosis" yaml:"kurtosis"`

	HasSpread   bool `json:"has_spread" yaml:"has_spread"`
	HasSkewness bool `json:"has_skewness" yaml:"has_skewness"`
	HasKurtosis bool `json:"has_kurtosis" yaml:"has_kurtosis"`
}

// Summarize computes a Summary of xs. Quartiles use Percentile; for samples
// too small for a quartile rank, Q1 and Q3 fall back to Min and Max.
//
// Errors:
//   - ErrEmptySample for an empty sample.
//   - ErrDomain when xs holds NaN or ±Inf.
//
// Every other shortfall is reported through the Has* flags. Variance is +Inf
// when the spread exceeds the float64 range; StdDev stays finite.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, describeErrorf(opSummarize, ErrEmptySample)
	}
	if !allFinite(xs) {
		return Summary{}, describeErrorf(opSummarize, ErrDomain)
	}

	s := Summary{N: len(xs), Mean: mean(xs)}
	s.Min, s.Max, _ = MinMax(xs)
	s.Median, _ = Median(xs)
	s.Mode, _ = Mode(xs, DefaultBins)

	var err error
	if s.Q1, err = Percentile(xs, 25); err != nil {
		s.Q1 = s.Min
	}
	if s.Q3, err = Percentile(xs, 75); err != nil {
		s.Q3 = s.Max
	}

	if s.N >= minVarianceN {
		s.HasSpread = true
		s.Variance = variance(xs, s.Mean)
		s.StdDev = stdDev(xs, s.Mean)
		s.StdErr = s.StdDev / math.Sqrt(float64(s.N))
	}
	if s.N >= minSkewnessN {
		s.HasSkewness = true
		s.Skewness, _ = Skewness(xs)
	}
	if s.N >= minKurtosisN {
		s.HasKurtosis = true
		s.Kurtosis, _ = Kurtosis(xs)
	}

	return s, nil
}
