// SPDX-License-Identifier: MIT

package dist

import (
	"math"

	"github.com/katalvlaran/quantlab/special"
)

// TQuantile search parameters.
const (
	tQuantileMaxBisect = 200
	tQuantileTol       = 1e-12
)

// farTailRatio is the √df/|t| below which TCDF uses the leading term of the
// incomplete-beta series; x = df/(df+t²) is then under 1e-100 and the
// dropped terms are O(x).
const farTailRatio = 1e-50

func validDF(df float64) bool {
	return !math.IsNaN(df) && df > 0
}

// TCDF returns P(T ≤ t) for Student's t with df degrees of freedom.
//
// With x = df/(df+t²), p = ½·I_x(df/2, ½) is the probability of the tail beyond
// |t|; the sign of t selects which tail that is. df may be fractional and
// +Inf is not accepted.
//
// Errors:
//   - ErrDomain for df ≤ 0, df = ±Inf or NaN arguments.
func TCDF(t, df float64) (float64, error) {
	if !validDF(df) || math.IsInf(df, 0) || math.IsNaN(t) {
		return math.NaN(), distErrorf(opTCDF, ErrDomain)
	}
	if math.IsInf(t, 1) {
		return 1, nil
	}
	if math.IsInf(t, -1) {
		return 0, nil
	}

	p, err := tTail(t, df)
	if err != nil {
		return math.NaN(), distErrorf(opTCDF, err)
	}
	if t > 0 {
		return clamp01(1 - p), nil
	}

	return clamp01(p), nil
}

// tTail returns P(T > |t|) = ½·I_x(df/2, ½) with x = df/(df+t²).
func tTail(t, df float64) (float64, error) {
	a := df / 2
	r := math.Sqrt(df) / math.Abs(t)
	if r < farTailRatio {
		// I_x(a, ½) ≈ x^a / (a·B(a, ½)) with x ≈ r².
		return 0.5 * math.Exp(2*a*math.Log(r)-math.Log(a)-special.LnBeta(a, 0.5)), nil
	}

	x := df / (df + t*t)
	if math.IsInf(t*t, 0) {
		x = r * r / (1 + r*r)
	}
	ib, err := special.RegIncBeta(x, a, 0.5)
	if err != nil {
		return math.NaN(), err
	}

	return 0.5 * ib, nil
}

// TTwoTailed returns the two-sided p-value P(|T| ≥ |t|) = 2·TCDF(−|t|).
func TTwoTailed(t, df float64) (float64, error) {
	lower, err := TCDF(-math.Abs(t), df)
	if err != nil {
		return math.NaN(), err
	}

	return clamp01(2 * lower), nil
}

// TPDF returns the Student's t density at t.
//
//	f(t) = Γ((ν+1)/2) / (√(νπ)·Γ(ν/2)) · (1 + t²/ν)^(−(ν+1)/2)
//
// evaluated in log space so that large ν does not overflow.
func TPDF(t, df float64) (float64, error) {
	if !validDF(df) || math.IsInf(df, 0) || math.IsNaN(t) {
		return math.NaN(), distErrorf(opTPDF, ErrDomain)
	}

	lnf := special.LnGamma((df+1)/2) - special.LnGamma(df/2) -
		0.5*math.Log(df*math.Pi) - (df+1)/2*math.Log1p(t*t/df)

	return math.Exp(lnf), nil
}

// TQuantile returns t with TCDF(t, df) = p.
//
// Implementation:
//   - Stage 1: validate p ∈ (0,1), df > 0.
//   - Stage 2: bracket [lo, hi] by doubling outwards from ±1, moving the
//     inner end along so the bracket stays one octave wide.
//   - Stage 3: bisect until the bracket is narrower than 1e-12 (relative).
//
// Errors:
//   - ErrDomain for p ∉ (0,1), df ≤ 0, df = ±Inf or NaN arguments.
//   - ErrOverflow when |t| would exceed the float64 range (tiny df with p
//     close to 0 or 1).
func TQuantile(p, df float64) (float64, error) {
	if math.IsNaN(p) || p <= 0 || p >= 1 || !validDF(df) || math.IsInf(df, 0) {
		return math.NaN(), distErrorf(opTQuantile, ErrDomain)
	}
	if p == 0.5 {
		return 0, nil
	}

	cdf := func(x float64) float64 {
		v, _ := TCDF(x, df) // df validated above
		return v
	}

	lo, hi := -1.0, 1.0
	for cdf(lo) > p {
		if math.IsInf(2*lo, 0) {
			return math.NaN(), distErrorf(opTQuantile, ErrOverflow)
		}
		lo, hi = 2*lo, lo
	}
	for cdf(hi) < p {
		if math.IsInf(2*hi, 0) {
			return math.NaN(), distErrorf(opTQuantile, ErrOverflow)
		}
		lo, hi = hi, 2*hi
	}

	var mid float64
	for i := 0; i < tQuantileMaxBisect; i++ {
		mid = lo + (hi-lo)/2
		if cdf(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= tQuantileTol*math.Max(1, math.Abs(mid)) {
			break
		}
	}

	return lo + (hi-lo)/2, nil
}

// StudentsT is Student's t-distribution with Nu degrees of freedom.
// Build it with NewStudentsT.
type StudentsT struct {
	Nu float64
}

// NewStudentsT returns t(nu), or ErrDomain when nu is not a finite positive number.
func NewStudentsT(nu float64) (StudentsT, error) {
	if !validDF(nu) || math.IsInf(nu, 0) {
		return StudentsT{}, distErrorf(opNewStudentsT, ErrDomain)
	}

	return StudentsT{Nu: nu}, nil
}

// CDF returns P(T ≤ t).
func (s StudentsT) CDF(t float64) float64 {
	v, err := TCDF(t, s.Nu)
	if err != nil {
		return math.NaN()
	}

	return v
}

// PDF returns the density at t.
func (s StudentsT) PDF(t float64) float64 {
	v, err := TPDF(t, s.Nu)
	if err != nil {
		return math.NaN()
	}

	return v
}

// Quantile returns t with CDF(t) = p.
func (s StudentsT) Quantile(p float64) (float64, error) {
	return TQuantile(p, s.Nu)
}

// Variance returns ν/(ν−2) for ν > 2 and +Inf otherwise.
func (s StudentsT) Variance() float64 {
	if s.Nu > 2 {
		return s.Nu / (s.Nu - 2)
	}

	return math.Inf(1)
}
