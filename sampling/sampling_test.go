// SPDX-License-Identifier: MIT

package sampling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quantlab/describe"
	"github.com/katalvlaran/quantlab/sampling"
)

// seqSource replays a fixed cycle of uniforms.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++

	return v
}

func TestNormal_Convergence(t *testing.T) {
	t.Parallel()

	xs, err := sampling.Normal(sampling.NewSource(42), 0, 1, 100000)
	require.NoError(t, err)
	require.Len(t, xs, 100000)

	m, err := describe.Mean(xs)
	require.NoError(t, err)
	sd, err := describe.StdDev(xs)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m, 0.05)
	assert.InDelta(t, 1.0, sd, 0.05)

	// the 97.5% point of N(0,1)
	below := 0
	for _, x := range xs {
		if x < 1.959963984540054 {
			below++
		}
	}
	assert.InDelta(t, 0.975, float64(below)/float64(len(xs)), 0.005)
}

func TestNormal_ShiftScale(t *testing.T) {
	t.Parallel()

	xs, err := sampling.Normal(sampling.NewSource(7), 100, 15, 50001)
	require.NoError(t, err)
	require.Len(t, xs, 50001)

	m, _ := describe.Mean(xs)
	sd, _ := describe.StdDev(xs)
	assert.InDelta(t, 100, m, 0.5)
	assert.InDelta(t, 15, sd, 0.5)
}

func TestNormal_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := sampling.Normal(sampling.NewSource(2024), 0, 1, 64)
	require.NoError(t, err)
	b, err := sampling.Normal(sampling.NewSource(2024), 0, 1, 64)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := sampling.Normal(sampling.NewSource(2025), 0, 1, 64)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	// zero seed is the default seed
	z, _ := sampling.Normal(sampling.NewSource(0), 0, 1, 8)
	d, _ := sampling.Normal(sampling.NewSource(sampling.DefaultSeed), 0, 1, 8)
	assert.Equal(t, d, z)
}

func TestNormal_EdgeCases(t *testing.T) {
	t.Parallel()

	src := sampling.NewSource(1)

	xs, err := sampling.Normal(src, 3, 1, 0)
	require.NoError(t, err)
	assert.NotNil(t, xs)
	assert.Empty(t, xs)

	xs, err = sampling.Normal(src, 3, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3}, xs)

	_, err = sampling.Normal(nil, 0, 1, 3)
	assert.ErrorIs(t, err, sampling.ErrNilSource)

	for _, tc := range []struct {
		mean, sd float64
		n        int
	}{
		{0, -1, 3},
		{0, 1, -1},
		{math.NaN(), 1, 3},
		{0, math.Inf(1), 3},
	} {
		_, err = sampling.Normal(src, tc.mean, tc.sd, tc.n)
		assert.ErrorIs(t, err, sampling.ErrDomain, "%+v", tc)
	}
}

func TestStdNormal_PolarTransform(t *testing.T) {
	t.Parallel()

	// u = v = 0.5 after mapping to (−1,1): s = 0.5, f = √(−2 ln 0.5 / 0.5).
	src := &seqSource{vals: []float64{0.75, 0.75}}
	want := 0.5 * math.Sqrt(-2*math.Log(0.5)/0.5)
	assert.InDelta(t, want, sampling.StdNormal(src), 1e-15)

	// the first pair lies outside the unit disc and is rejected
	src = &seqSource{vals: []float64{0.99, 0.99, 0.75, 0.75}}
	assert.InDelta(t, want, sampling.StdNormal(src), 1e-15)
	assert.Equal(t, 4, src.i)
}

func TestUniformExponential(t *testing.T) {
	t.Parallel()

	u, err := sampling.Uniform(&seqSource{vals: []float64{0, 0.25, 0.5}}, 10, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12.5, 15}, u)

	e, err := sampling.Exponential(&seqSource{vals: []float64{0.5}}, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2/2, e[0], 1e-15)

	big, err := sampling.Exponential(sampling.NewSource(9), 2, 100000)
	require.NoError(t, err)
	m, _ := describe.Mean(big)
	assert.InDelta(t, 0.5, m, 0.01)

	_, err = sampling.Uniform(sampling.NewSource(1), 2, 1, 3)
	assert.ErrorIs(t, err, sampling.ErrDomain)
	_, err = sampling.Exponential(sampling.NewSource(1), 0, 3)
	assert.ErrorIs(t, err, sampling.ErrDomain)
	_, err = sampling.Uniform(nil, 0, 1, 1)
	assert.ErrorIs(t, err, sampling.ErrNilSource)
}

func TestLogNormal(t *testing.T) {
	t.Parallel()

	xs, err := sampling.LogNormal(sampling.NewSource(5), 0, 0.5, 100000)
	require.NoError(t, err)
	for _, x := range xs {
		require.Greater(t, x, 0.0)
	}
	m, _ := describe.Mean(xs)
	assert.InDelta(t, math.Exp(0.125), m, 0.02)

	_, err = sampling.LogNormal(sampling.NewSource(5), 0, -1, 3)
	assert.ErrorIs(t, err, sampling.ErrDomain)
}

func TestPoisson(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		lambda, tol float64
		n           int
	}{
		{3, 0.05, 100000},
		{1200, 3, 10000},
	} {
		ks, err := sampling.Poisson(sampling.NewSource(11), tc.lambda, tc.n)
		require.NoError(t, err)
		sum := 0
		for _, k := range ks {
			require.GreaterOrEqual(t, k, 0)
			sum += k
		}
		assert.InDelta(t, tc.lambda, float64(sum)/float64(tc.n), tc.tol, "lambda=%g", tc.lambda)
	}

	_, err := sampling.Poisson(sampling.NewSource(1), -2, 1)
	assert.ErrorIs(t, err, sampling.ErrDomain)
}

func TestDeriveSource(t *testing.T) {
	t.Parallel()

	a := sampling.DeriveSource(99, 1)
	b := sampling.DeriveSource(99, 1)
	c := sampling.DeriveSource(99, 2)
	va, vb, vc := a.Float64(), b.Float64(), c.Float64()
	assert.Equal(t, va, vb)
	assert.NotEqual(t, va, vc)
}

func TestGenerators_Float64Limits(t *testing.T) {
	t.Parallel()

	_, err := sampling.Normal(sampling.NewSource(3), 1e308, 1e308, 1000)
	assert.ErrorIs(t, err, sampling.ErrDomain)
	_, err = sampling.LogNormal(sampling.NewSource(3), 800, 1, 5)
	assert.ErrorIs(t, err, sampling.ErrDomain)

	u, err := sampling.Uniform(&seqSource{vals: []float64{0, 0.5, 0.999}}, -1e308, 1e308, 3)
	require.NoError(t, err)
	assert.Equal(t, -1e308, u[0])
	assert.Equal(t, 0.0, u[1])
	for _, x := range u {
		assert.False(t, math.IsInf(x, 0) || math.IsNaN(x))
	}
}

func TestPoisson_LambdaCap(t *testing.T) {
	t.Parallel()

	_, err := sampling.Poisson(sampling.NewSource(1), 1e15, 1)
	assert.ErrorIs(t, err, sampling.ErrDomain)
	_, err = sampling.Poisson(sampling.NewSource(1), math.Nextafter(sampling.MaxPoissonLambda, math.Inf(1)), 1)
	assert.ErrorIs(t, err, sampling.ErrDomain)
}
