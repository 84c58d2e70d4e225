// SPDX-License-Identifier: MIT

package sampling

import "math"

// poissonChunk bounds λ per Knuth pass; exp(−λ) stays far from underflow.
const poissonChunk = 500.0

// StdNormal returns one N(0, 1) variate using the Marsaglia polar method.
func StdNormal(src Source) float64 {
	z, _ := polar(src)

	return z
}

// polar returns two independent N(0, 1) variates.
func polar(src Source) (float64, float64) {
	var u, v, s float64
	for {
		u = 2*src.Float64() - 1
		v = 2*src.Float64() - 1
		s = u*u + v*v
		if s > 0 && s < 1 {
			break
		}
	}
	f := math.Sqrt(-2 * math.Log(s) / s)

	return u * f, v * f
}

// Normal returns count independent draws from N(mean, stdDev²).
// stdDev == 0 yields count copies of mean; count == 0 yields an empty slice.
//
// Errors:
//   - ErrNilSource when src is nil.
//   - ErrDomain when stdDev < 0, count < 0 or a parameter is not finite,
//     or when a draw overflows float64 (e.g. mean and stdDev near 1e308).
func Normal(src Source, mean, stdDev float64, count int) ([]float64, error) {
	if src == nil {
		return nil, samplingErrorf(opNormal, ErrNilSource)
	}
	if !finite(mean) || !finite(stdDev) || stdDev < 0 || count < 0 {
		return nil, samplingErrorf(opNormal, ErrDomain)
	}

	out := make([]float64, count)
	var z1, z2 float64
	for i := 0; i < count; i += 2 {
		z1, z2 = polar(src)
		out[i] = mean + stdDev*z1
		if i+1 < count {
			out[i+1] = mean + stdDev*z2
		}
	}
	if !allFinite(out) {
		return nil, samplingErrorf(opNormal, ErrDomain)
	}

	return out, nil
}

// Uniform returns n draws from U[lo, hi).
func Uniform(src Source, lo, hi float64, n int) ([]float64, error) {
	if src == nil {
		return nil, samplingErrorf(opUniform, ErrNilSource)
	}
	if !finite(lo) || !finite(hi) || hi < lo || n < 0 {
		return nil, samplingErrorf(opUniform, ErrDomain)
	}

	// lo + 2·(half·U) in two steps: hi − lo may exceed float64.
	half := hi*0.5 - lo*0.5
	var h float64
	out := make([]float64, n)
	for i := range out {
		h = half * src.Float64()
		out[i] = lo + h + h
	}

	return out, nil
}

// LogNormal returns n draws of exp(N(mu, sigma²)).
func LogNormal(src Source, mu, sigma float64, n int) ([]float64, error) {
	if src == nil {
		return nil, samplingErrorf(opLogNormal, ErrNilSource)
	}
	z, err := Normal(src, mu, sigma, n)
	if err != nil {
		return nil, samplingErrorf(opLogNormal, ErrDomain)
	}
	for i := range z {
		z[i] = math.Exp(z[i])
	}
	if !allFinite(z) {
		return nil, samplingErrorf(opLogNormal, ErrDomain)
	}

	return z, nil
}

// Exponential returns n draws from Exp(rate) by inversion, −ln(1−U)/rate.
func Exponential(src Source, rate float64, n int) ([]float64, error) {
	if src == nil {
		return nil, samplingErrorf(opExponential, ErrNilSource)
	}
	if !finite(rate) || rate <= 0 || n < 0 {
		return nil, samplingErrorf(opExponential, ErrDomain)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = -math.Log1p(-src.Float64()) / rate
	}
	if !allFinite(out) {
		return nil, samplingErrorf(opExponential, ErrDomain)
	}

	return out, nil
}

// MaxPoissonLambda bounds the Poisson mean; each draw costs about lambda
// uniforms.
const MaxPoissonLambda = 1e6

// Poisson returns n draws from Poisson(lambda). Means above 500 are drawn as a
// sum of independent Poisson chunks.
//
// Errors:
//   - ErrDomain when lambda ∉ (0, MaxPoissonLambda] or n < 0.
func Poisson(src Source, lambda float64, n int) ([]int, error) {
	if src == nil {
		return nil, samplingErrorf(opPoisson, ErrNilSource)
	}
	if !finite(lambda) || lambda <= 0 || lambda > MaxPoissonLambda || n < 0 {
		return nil, samplingErrorf(opPoisson, ErrDomain)
	}

	out := make([]int, n)
	for i := range out {
		rest := lambda
		for rest > poissonChunk {
			out[i] += knuth(src, poissonChunk)
			rest -= poissonChunk
		}
		out[i] += knuth(src, rest)
	}

	return out, nil
}

func knuth(src Source, lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := src.Float64()
	for p > limit {
		k++
		p *= src.Float64()
	}

	return k
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if !finite(x) {
			return false
		}
	}

	return true
}
