// SPDX-License-Identifier: MIT

package hypothesis

import (
	"math"

	"github.com/katalvlaran/quantlab/describe"
	"github.com/katalvlaran/quantlab/dist"
)

// Result is the outcome of a mean test.
type Result struct {
	Statistic  float64 `json:"statistic" yaml:"statistic"`
	DF         float64 `json:"df" yaml:"df"` // 0 for the z-test
	PValue     float64 `json:"p_value" yaml:"p_value"`
	MeanDiff   float64 `json:"mean_diff" yaml:"mean_diff"`
	StdErr     float64 `json:"std_err" yaml:"std_err"`
	EffectSize float64 `json:"effect_size" yaml:"effect_size"` // Cohen's d
	Tail       Tail    `json:"tail" yaml:"tail"`
}

// Significant reports whether PValue < alpha.
func (r Result) Significant(alpha float64) bool {
	return r.PValue < alpha
}

// group holds the summary of one sample.
type group struct {
	n    float64
	mean float64
	vari float64
}

func summarize(xs []float64) (group, error) {
	v, err := describe.Variance(xs)
	if err != nil {
		return group{}, err
	}
	m, _ := describe.Mean(xs)

	return group{n: float64(len(xs)), mean: m, vari: v}, nil
}

// tResult finishes a t-test given the statistic inputs.
func tResult(diff, se, df, effect float64, tail Tail) (Result, error) {
	if se == 0 {
		return Result{}, ErrZeroVariance
	}
	t := diff / se
	lower, err := dist.TCDF(t, df)
	if err != nil {
		return Result{}, err
	}
	p, err := tail.pValue(lower)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Statistic:  t,
		DF:         df,
		PValue:     p,
		MeanDiff:   diff,
		StdErr:     se,
		EffectSize: effect,
		Tail:       tail,
	}, nil
}

// OneSample tests H0: μ = mu0 with t = (x̄ − mu0)/(s/√n), df = n − 1.
//
// Errors:
//   - describe.ErrInsufficientData for n < 2.
//   - ErrZeroVariance for a constant sample.
func OneSample(xs []float64, mu0 float64, tail Tail) (Result, error) {
	g, err := summarize(xs)
	if err != nil {
		return Result{}, hypothesisErrorf(opOneSample, err)
	}
	sd := math.Sqrt(g.vari)
	res, err := tResult(g.mean-mu0, sd/math.Sqrt(g.n), g.n-1, (g.mean-mu0)/sd, tail)
	if err != nil {
		return Result{}, hypothesisErrorf(opOneSample, err)
	}

	return res, nil
}

// Paired tests H0: mean(x − y) = 0 on the element-wise differences.
func Paired(x, y []float64, tail Tail) (Result, error) {
	if len(x) != len(y) {
		return Result{}, hypothesisErrorf(opPaired, ErrLengthMismatch)
	}
	d := make([]float64, len(x))
	for i := range x {
		d[i] = x[i] - y[i]
	}
	res, err := OneSample(d, 0, tail)
	if err != nil {
		return Result{}, hypothesisErrorf(opPaired, err)
	}

	return res, nil
}

// Independent is Student's two-sample t-test with pooled variance,
// df = n1 + n2 − 2.
func Independent(a, b []float64, tail Tail) (Result, error) {
	ga, err := summarize(a)
	if err != nil {
		return Result{}, hypothesisErrorf(opIndependent, err)
	}
	gb, err := summarize(b)
	if err != nil {
		return Result{}, hypothesisErrorf(opIndependent, err)
	}

	sp := pooledSD(ga, gb)
	diff := ga.mean - gb.mean
	res, err := tResult(diff, sp*math.Sqrt(1/ga.n+1/gb.n), ga.n+gb.n-2, diff/sp, tail)
	if err != nil {
		return Result{}, hypothesisErrorf(opIndependent, err)
	}

	return res, nil
}

// Welch is the unequal-variance two-sample t-test with Welch–Satterthwaite df
//
//	df = (v1/n1 + v2/n2)² / ((v1/n1)²/(n1−1) + (v2/n2)²/(n2−1))
//
// EffectSize is Cohen's d with the pooled standard deviation.
func Welch(a, b []float64, tail Tail) (Result, error) {
	ga, err := summarize(a)
	if err != nil {
		return Result{}, hypothesisErrorf(opWelch, err)
	}
	gb, err := summarize(b)
	if err != nil {
		return Result{}, hypothesisErrorf(opWelch, err)
	}

	qa, qb := ga.vari/ga.n, gb.vari/gb.n
	se := math.Sqrt(qa + qb)
	if se == 0 {
		return Result{}, hypothesisErrorf(opWelch, ErrZeroVariance)
	}
	df := (qa + qb) * (qa + qb) / (qa*qa/(ga.n-1) + qb*qb/(gb.n-1))
	diff := ga.mean - gb.mean
	res, err := tResult(diff, se, df, diff/pooledSD(ga, gb), tail)
	if err != nil {
		return Result{}, hypothesisErrorf(opWelch, err)
	}

	return res, nil
}

func pooledSD(a, b group) float64 {
	return math.Sqrt(((a.n-1)*a.vari + (b.n-1)*b.vari) / (a.n + b.n - 2))
}

// ZTest tests H0: μ = mu0 against a known population σ; z = (x̄ − mu0)/(σ/√n).
// A single observation is enough.
func ZTest(xs []float64, mu0, sigma float64, tail Tail) (Result, error) {
	m, err := describe.Mean(xs)
	if err != nil {
		return Result{}, hypothesisErrorf(opZTest, err)
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return Result{}, hypothesisErrorf(opZTest, ErrDomain)
	}

	se := sigma / math.Sqrt(float64(len(xs)))
	z := (m - mu0) / se
	p, err := tail.pValue(dist.StdNormalCDF(z))
	if err != nil {
		return Result{}, hypothesisErrorf(opZTest, err)
	}

	return Result{
		Statistic:  z,
		PValue:     p,
		MeanDiff:   m - mu0,
		StdErr:     se,
		EffectSize: (m - mu0) / sigma,
		Tail:       tail,
	}, nil
}
