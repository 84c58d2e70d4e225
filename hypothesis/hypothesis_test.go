// SPDX-License-Identifier: MIT

package hypothesis_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/quantlab/describe"
	"github.com/katalvlaran/quantlab/hypothesis"
)

type TTestSuite struct {
	suite.Suite
	a, b []float64
	x, y []float64
}

func (s *TTestSuite) SetupTest() {
	s.a = []float64{5.1, 4.9, 5.6, 5.8, 6.0, 5.3, 5.7}
	s.b = []float64{4.2, 4.8, 5.0, 4.6, 4.4}
	s.x = []float64{12.1, 11.4, 13.0, 12.7, 11.9, 12.4}
	s.y = []float64{11.8, 11.5, 12.2, 12.0, 11.6, 12.1}
}

func TestTTestSuite(t *testing.T) {
	suite.Run(t, new(TTestSuite))
}

func (s *TTestSuite) TestOneSample() {
	r, err := hypothesis.OneSample(s.a, 5, hypothesis.TwoSided)
	s.Require().NoError(err)
	s.InDelta(3.231993677674838, r.Statistic, 1e-12)
	s.Equal(6.0, r.DF)
	s.InDelta(0.017865665064734415, r.PValue, 1e-9)
	s.InDelta(0.15028317941009045, r.StdErr, 1e-12)
	s.InDelta(1.2215787871515245, r.EffectSize, 1e-12)
	s.True(r.Significant(0.05))
	s.False(r.Significant(0.01))

	ref := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 6}
	s.InDelta(2*ref.Survival(r.Statistic), r.PValue, 1e-9)

	less, err := hypothesis.OneSample(s.a, 5, hypothesis.Less)
	s.Require().NoError(err)
	s.InDelta(0.9910671674676328, less.PValue, 1e-9)

	greater, err := hypothesis.OneSample(s.a, 5, hypothesis.Greater)
	s.Require().NoError(err)
	s.InDelta(0.008932832532367208, greater.PValue, 1e-9)
	s.InDelta(1, less.PValue+greater.PValue, 1e-12)
}

func (s *TTestSuite) TestPaired() {
	r, err := hypothesis.Paired(s.x, s.y, hypothesis.TwoSided)
	s.Require().NoError(err)
	s.InDelta(2.888572065994139, r.Statistic, 1e-9)
	s.Equal(5.0, r.DF)
	s.InDelta(0.03424378982102261, r.PValue, 1e-9)

	_, err = hypothesis.Paired(s.x, s.y[:3], hypothesis.TwoSided)
	s.ErrorIs(err, hypothesis.ErrLengthMismatch)
}

func (s *TTestSuite) TestIndependentPooled() {
	r, err := hypothesis.Independent(s.a, s.b, hypothesis.TwoSided)
	s.Require().NoError(err)
	s.InDelta(4.11907852675869, r.Statistic, 1e-12)
	s.Equal(10.0, r.DF)
	s.InDelta(0.0020801517533617364, r.PValue, 1e-9)
	s.InDelta(0.21502728825402032, r.StdErr, 1e-12)
	s.InDelta(2.4118854208467253, r.EffectSize, 1e-12)
}

func (s *TTestSuite) TestWelch() {
	r, err := hypothesis.Welch(s.a, s.b, hypothesis.TwoSided)
	s.Require().NoError(err)
	s.InDelta(4.2920537321446295, r.Statistic, 1e-12)
	s.InDelta(9.801882623667028, r.DF, 1e-9)
	s.InDelta(0.0016552029412160163, r.PValue, 1e-9)

	// swapping groups flips the sign but not the two-sided p-value
	rs, err := hypothesis.Welch(s.b, s.a, hypothesis.TwoSided)
	s.Require().NoError(err)
	s.InDelta(-r.Statistic, rs.Statistic, 1e-12)
	s.InDelta(r.PValue, rs.PValue, 1e-12)
}

func (s *TTestSuite) TestZTest() {
	r, err := hypothesis.ZTest(s.a, 5, 0.5, hypothesis.TwoSided)
	s.Require().NoError(err)
	s.InDelta(2.570158416462746, r.Statistic, 1e-12)
	s.InDelta(0.010165201891956244, r.PValue, 1e-12)
	s.Zero(r.DF)

	_, err = hypothesis.ZTest(s.a, 5, 0, hypothesis.TwoSided)
	s.ErrorIs(err, hypothesis.ErrDomain)
	_, err = hypothesis.ZTest(nil, 5, 1, hypothesis.TwoSided)
	s.ErrorIs(err, describe.ErrEmptySample)
}

func (s *TTestSuite) TestErrors() {
	_, err := hypothesis.OneSample([]float64{1}, 0, hypothesis.TwoSided)
	s.ErrorIs(err, describe.ErrInsufficientData)

	_, err = hypothesis.OneSample([]float64{2, 2, 2}, 0, hypothesis.TwoSided)
	s.ErrorIs(err, hypothesis.ErrZeroVariance)

	_, err = hypothesis.Welch([]float64{1, 1}, []float64{3, 3}, hypothesis.TwoSided)
	s.ErrorIs(err, hypothesis.ErrZeroVariance)

	_, err = hypothesis.Independent(s.a, []float64{1}, hypothesis.TwoSided)
	s.ErrorIs(err, describe.ErrInsufficientData)

	_, err = hypothesis.OneSample(s.a, 5, hypothesis.Tail(9))
	s.ErrorIs(err, hypothesis.ErrDomain)
}

func TestPValuesStayInUnitInterval(t *testing.T) {
	t.Parallel()

	far := []float64{1000, 1000.1, 999.9, 1000.05}
	for _, tail := range []hypothesis.Tail{hypothesis.TwoSided, hypothesis.Less, hypothesis.Greater} {
		r, err := hypothesis.OneSample(far, 0, tail)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.PValue, 0.0)
		assert.LessOrEqual(t, r.PValue, 1.0)
	}
}

func TestMeanCI(t *testing.T) {
	t.Parallel()

	xs := []float64{5.1, 4.9, 5.6, 5.8, 6.0, 5.3, 5.7}
	iv, err := hypothesis.MeanCI(xs, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 5.117984592988006, iv.Lo, 1e-9)
	assert.InDelta(t, 5.853443978440565, iv.Hi, 1e-9)
	assert.InDelta(t, 2.4469118511448604, iv.Critical, 1e-9)
	assert.True(t, iv.Contains(iv.Mean))
	assert.False(t, iv.Contains(5))

	flat, err := hypothesis.MeanCI([]float64{3, 3, 3}, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 3.0, flat.Lo)
	assert.Equal(t, 3.0, flat.Hi)

	for _, level := range []float64{0, 1, -0.5, math.NaN()} {
		_, err = hypothesis.MeanCI(xs, level)
		assert.ErrorIs(t, err, hypothesis.ErrBadLevel)
	}
	_, err = hypothesis.MeanCI([]float64{1}, 0.95)
	assert.ErrorIs(t, err, describe.ErrInsufficientData)
}

func TestTailText(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "two-sided", "BOTH"} {
		tail, err := hypothesis.ParseTail(in)
		require.NoError(t, err)
		assert.Equal(t, hypothesis.TwoSided, tail)
	}
	_, err := hypothesis.ParseTail("sideways")
	assert.ErrorIs(t, err, hypothesis.ErrDomain)

	var body struct {
		Tail hypothesis.Tail `json:"tail"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tail":"greater"}`), &body))
	assert.Equal(t, hypothesis.Greater, body.Tail)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tail":"greater"}`, string(out))
	assert.Equal(t, "Tail(7)", hypothesis.Tail(7).String())
}
