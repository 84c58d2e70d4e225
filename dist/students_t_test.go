// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/quantlab/dist"
)

func TestTCDF_ZeroIsHalf(t *testing.T) {
	t.Parallel()

	for _, df := range []float64{0.5, 1, 2, 3.7, 10, 100, 1e4, 1e6} {
		v, err := dist.TCDF(0, df)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, v, 1e-12, "df=%g", df)
	}
}

func TestTCDF_KnownValues(t *testing.T) {
	t.Parallel()

	// Cauchy: F(1) = 3/4.
	v, err := dist.TCDF(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, v, 1e-10)

	v, err = dist.TCDF(2, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.9490302605850761, v, 1e-9)

	v, err = dist.TCDF(-2, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.05096973941492392, v, 1e-9)
}

func TestTCDF_BothSignsMatchGonum(t *testing.T) {
	t.Parallel()

	for _, df := range []float64{1, 2, 4, 9, 29, 120} {
		ref := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		for x := -6.0; x <= 6; x += 0.25 {
			got, err := dist.TCDF(x, df)
			require.NoError(t, err)
			assert.InDelta(t, ref.CDF(x), got, 1e-9, "t=%g df=%g", x, df)
		}
	}
}

func TestTCDF_ConvergesToNormal(t *testing.T) {
	t.Parallel()

	for i := -300; i <= 300; i++ {
		x := float64(i) / 100
		v, err := dist.TCDF(x, 10000)
		require.NoError(t, err)
		assert.InDelta(t, dist.StdNormalCDF(x), v, 1e-3, "x=%g", x)
	}
}

func TestTCDF_Domain(t *testing.T) {
	t.Parallel()

	for _, df := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		v, err := dist.TCDF(1, df)
		assert.ErrorIs(t, err, dist.ErrDomain, "df=%g", df)
		assert.True(t, math.IsNaN(v))
	}
	_, err := dist.TCDF(math.NaN(), 3)
	assert.ErrorIs(t, err, dist.ErrDomain)

	v, err := dist.TCDF(math.Inf(1), 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestTTwoTailed(t *testing.T) {
	t.Parallel()

	p, err := dist.TTwoTailed(2.2281388519862606, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, p, 1e-8)

	pNeg, err := dist.TTwoTailed(-2.2281388519862606, 10)
	require.NoError(t, err)
	assert.Equal(t, p, pNeg)
}

func TestTPDF(t *testing.T) {
	t.Parallel()

	// Cauchy density at 0 is 1/π.
	v, err := dist.TPDF(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Pi, v, 1e-12)

	for _, df := range []float64{3, 30} {
		ref := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		for x := -4.0; x <= 4; x += 0.5 {
			got, err := dist.TPDF(x, df)
			require.NoError(t, err)
			assert.InDelta(t, ref.Prob(x), got, 1e-10, "t=%g df=%g", x, df)
		}
	}

	// large df tends to the normal density and must not overflow
	v, err = dist.TPDF(1, 1e6)
	require.NoError(t, err)
	assert.InDelta(t, dist.StdNormalPDF(1), v, 1e-5)

	_, err = dist.TPDF(0, 0)
	assert.ErrorIs(t, err, dist.ErrDomain)
}

func TestTQuantile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		p, df, want float64
	}{
		{0.975, 10, 2.2281388519862606},
		{0.975, 1, 12.706204736174707},
		{0.995, 30, 2.7499956535670},
		{0.025, 5, -2.5705818356363093},
		{0.5, 7, 0},
	}
	for _, tc := range cases {
		got, err := dist.TQuantile(tc.p, tc.df)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-7, "p=%g df=%g", tc.p, tc.df)
	}

	for _, p := range []float64{0, 1, math.NaN()} {
		_, err := dist.TQuantile(p, 3)
		assert.ErrorIs(t, err, dist.ErrDomain)
	}
	_, err := dist.TQuantile(0.5, -1)
	assert.ErrorIs(t, err, dist.ErrDomain)
}

func TestStudentsT(t *testing.T) {
	t.Parallel()

	s, err := dist.NewStudentsT(5)
	require.NoError(t, err)
	assert.InDelta(t, 0.9490302605850761, s.CDF(2), 1e-9)
	assert.InDelta(t, 5.0/3, s.Variance(), 1e-15)
	assert.True(t, math.IsInf(dist.StudentsT{Nu: 2}.Variance(), 1))

	q, err := s.Quantile(s.CDF(1.3))
	require.NoError(t, err)
	assert.InDelta(t, 1.3, q, 1e-8)

	_, err = dist.NewStudentsT(0)
	assert.ErrorIs(t, err, dist.ErrDomain)
	assert.True(t, math.IsNaN(dist.StudentsT{}.CDF(1)))
}

// With df < 1 the tails are so heavy that quantiles reach 1e26 and beyond.
func TestTQuantile_HeavyTails(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ p, df float64 }{
		{0.999, 0.1},
		{0.001, 0.1},
		{0.99, 0.3},
		{0.9, 0.05},
	} {
		q, err := dist.TQuantile(tc.p, tc.df)
		require.NoError(t, err, "p=%g df=%g", tc.p, tc.df)
		got, err := dist.TCDF(q, tc.df)
		require.NoError(t, err)
		assert.InEpsilon(t, tc.p, got, 1e-9, "p=%g df=%g q=%g", tc.p, tc.df, q)
	}

	_, err := dist.TQuantile(0.9999, 0.01)
	assert.ErrorIs(t, err, dist.ErrOverflow)
	_, err = dist.TQuantile(0.0001, 0.01)
	assert.ErrorIs(t, err, dist.ErrOverflow)
}

// Far in the tail P(T < −t) falls like t^−df.
func TestTCDF_FarTail(t *testing.T) {
	t.Parallel()

	for _, pair := range [][2]float64{{1e199, 1e200}, {3.1e49, 3.2e49}, {1e20, 1e21}} {
		near, err := dist.TCDF(-pair[0], 0.1)
		require.NoError(t, err)
		far, err := dist.TCDF(-pair[1], 0.1)
		require.NoError(t, err)
		require.Greater(t, far, 0.0)
		assert.InEpsilon(t, math.Pow(pair[1]/pair[0], 0.1), near/far, 1e-9, "t=%g", pair[0])
	}
}
