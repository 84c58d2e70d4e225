// SPDX-License-Identifier: MIT

package describe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/quantlab/describe"
)

var textbook = []float64{2, 4, 4, 4, 5, 5, 7, 9}

func TestMean(t *testing.T) {
	t.Parallel()

	m, err := describe.Mean(textbook)
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)

	m, err = describe.Mean([]float64{-1.5})
	require.NoError(t, err)
	assert.Equal(t, -1.5, m)

	_, err = describe.Mean(nil)
	assert.ErrorIs(t, err, describe.ErrEmptySample)
}

func TestVariance(t *testing.T) {
	t.Parallel()

	v, err := describe.Variance(textbook)
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7, v, 1e-15)
	assert.InDelta(t, stat.Variance(textbook, nil), v, 1e-12)

	sd, err := describe.StdDev(textbook)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32.0/7), sd, 1e-15)

	se, err := describe.StdErr(textbook)
	require.NoError(t, err)
	assert.InDelta(t, sd/math.Sqrt(8), se, 1e-15)
}

func TestVariance_InsufficientData(t *testing.T) {
	t.Parallel()

	for _, xs := range [][]float64{nil, {}, {3}} {
		_, err := describe.Variance(xs)
		assert.ErrorIs(t, err, describe.ErrInsufficientData)
		_, err = describe.StdDev(xs)
		assert.ErrorIs(t, err, describe.ErrInsufficientData)
		_, err = describe.StdErr(xs)
		assert.ErrorIs(t, err, describe.ErrInsufficientData)
	}
}

// A large common offset must not destroy the result.
func TestVariance_LargeOffsetIsStable(t *testing.T) {
	t.Parallel()

	xs := []float64{1e9 + 4, 1e9 + 7, 1e9 + 13, 1e9 + 16}
	v, err := describe.Variance(xs)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, v, 1e-6)
}

func TestVariance_NonNegative(t *testing.T) {
	t.Parallel()

	samples := [][]float64{
		{1, 1},
		{0.1, 0.1, 0.1, 0.1},
		{1e-300, 1e-300, 2e-300},
		{-3, 3},
		{1e15 + 0.1, 1e15 + 0.1, 1e15 + 0.1},
	}
	for _, xs := range samples {
		v, err := describe.Variance(xs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0, "xs=%v", xs)
	}
}

func TestSkewnessKurtosis(t *testing.T) {
	t.Parallel()

	g1, err := describe.Skewness(textbook)
	require.NoError(t, err)
	assert.InDelta(t, 0.8184875533567996, g1, 1e-12)
	assert.InDelta(t, stat.Skew(textbook, nil), g1, 1e-12)

	g2, err := describe.Kurtosis(textbook)
	require.NoError(t, err)
	assert.InDelta(t, 0.940625, g2, 1e-12)
	assert.InDelta(t, stat.ExKurtosis(textbook, nil), g2, 1e-9)

	// constant samples have no shape
	flat := []float64{3, 3, 3, 3}
	g1, err = describe.Skewness(flat)
	require.NoError(t, err)
	assert.Equal(t, 0.0, g1)
	g2, err = describe.Kurtosis(flat)
	require.NoError(t, err)
	assert.Equal(t, 0.0, g2)

	_, err = describe.Skewness([]float64{1, 2})
	assert.ErrorIs(t, err, describe.ErrInsufficientData)
	_, err = describe.Kurtosis([]float64{1, 2, 3})
	assert.ErrorIs(t, err, describe.ErrInsufficientData)
}

func TestMedianPercentile(t *testing.T) {
	t.Parallel()

	odd := []float64{3, 1, 2}
	m, err := describe.Median(odd)
	require.NoError(t, err)
	assert.Equal(t, 2.0, m)
	assert.Equal(t, []float64{3, 1, 2}, odd, "input must not be reordered")

	m, err = describe.Median([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	_, err = describe.Median(nil)
	assert.ErrorIs(t, err, describe.ErrEmptySample)

	ten := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	cases := []struct {
		p, want float64
	}{
		{50, 5},
		{100, 10},
		{25, 2.5},
	}
	for _, tc := range cases {
		got, err := describe.Percentile(ten, tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "p=%g", tc.p)
	}
	assert.Equal(t, 10.0, ten[0], "input must not be reordered")

	for _, p := range []float64{0, -5, 101, math.NaN(), 5} {
		_, err := describe.Percentile(ten, p)
		assert.ErrorIs(t, err, describe.ErrDomain, "p=%g", p)
	}
	_, err = describe.Percentile(nil, 50)
	assert.ErrorIs(t, err, describe.ErrEmptySample)
}

func TestHistogramMode(t *testing.T) {
	t.Parallel()

	h, err := describe.Histogram([]float64{0, 1, 2, 3, 4}, 2)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, describe.Bin{Lo: 0, Hi: 2, Count: 2}, h[0])
	assert.Equal(t, describe.Bin{Lo: 2, Hi: 4, Count: 3}, h[1])

	h, err = describe.Histogram([]float64{7, 7, 7}, 10)
	require.NoError(t, err)
	require.Len(t, h, 1)
	assert.Equal(t, 3, h[0].Count)

	mode, err := describe.Mode(textbook, describe.DefaultBins)
	require.NoError(t, err)
	assert.InDelta(t, 3.9833333333333334, mode, 1e-12)

	_, err = describe.Histogram(textbook, 0)
	assert.ErrorIs(t, err, describe.ErrDomain)
	_, err = describe.Mode(nil, 5)
	assert.ErrorIs(t, err, describe.ErrEmptySample)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s, err := describe.Summarize(textbook)
	require.NoError(t, err)
	assert.Equal(t, 8, s.N)
	assert.Equal(t, 5.0, s.Mean)
	assert.Equal(t, 4.5, s.Median)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 4.0, s.Q1)
	assert.Equal(t, 5.0, s.Q3)
	assert.InDelta(t, 32.0/7, s.Variance, 1e-15)
	assert.True(t, s.HasSpread)
	assert.True(t, s.HasSkewness)
	assert.True(t, s.HasKurtosis)

	one, err := describe.Summarize([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, 42.0, one.Mean)
	assert.Equal(t, 42.0, one.Q1)
	assert.False(t, one.HasSpread)
	assert.False(t, one.HasSkewness)
	assert.Zero(t, one.Variance)

	_, err = describe.Summarize(nil)
	assert.ErrorIs(t, err, describe.ErrEmptySample)
}

// Samples near the float64 limit: the sum and the range overflow even though
// every value is finite.
var huge = []float64{1e308, 1e308, 1.5e308}

func TestMoments_NearFloat64Limit(t *testing.T) {
	t.Parallel()

	m, err := describe.Mean(huge)
	require.NoError(t, err)
	assert.InEpsilon(t, 3.5e308/3, m, 1e-15)

	v, err := describe.Variance(huge)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "variance %g exceeds float64", v)

	sd, err := describe.StdDev(huge)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Sqrt(1.0/12)*1e308, sd, 1e-14)

	// shape is scale free: huge has the shape of {0, 0, 1}
	want, err := describe.Skewness([]float64{0, 0, 1})
	require.NoError(t, err)
	g1, err := describe.Skewness(huge)
	require.NoError(t, err)
	assert.InDelta(t, want, g1, 1e-12)

	s, err := describe.Summarize(huge)
	require.NoError(t, err)
	assert.InEpsilon(t, sd, s.StdDev, 1e-15)
	assert.False(t, math.IsNaN(s.Skewness))
}

func TestHistogram_RangeWiderThanFloat64(t *testing.T) {
	t.Parallel()

	xs := []float64{-1e308, 1e308}
	h, err := describe.Histogram(xs, describe.DefaultBins)
	require.NoError(t, err)
	require.Len(t, h, describe.DefaultBins)
	assert.Equal(t, 1, h[0].Count)
	assert.Equal(t, 1, h[len(h)-1].Count)
	assert.Equal(t, -1e308, h[0].Lo)
	assert.Equal(t, 1e308, h[len(h)-1].Hi)
	for i, b := range h {
		assert.False(t, math.IsInf(b.Lo, 0) || math.IsInf(b.Hi, 0), "bin %d", i)
		assert.False(t, math.IsInf(b.Mid(), 0), "bin %d", i)
	}

	s, err := describe.Summarize(xs)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Mean)
	assert.False(t, math.IsNaN(s.Mode))
}

func TestHistogram_NonFinite(t *testing.T) {
	t.Parallel()

	for _, xs := range [][]float64{{1, math.NaN()}, {math.Inf(-1), 2}} {
		_, err := describe.Histogram(xs, 5)
		assert.ErrorIs(t, err, describe.ErrDomain)
		_, err = describe.Summarize(xs)
		assert.ErrorIs(t, err, describe.ErrDomain)
	}
}
