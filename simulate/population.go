// SPDX-License-Identifier: MIT

package simulate

import (
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/quantlab/sampling"
)

// Population is a distribution the engine samples from.
type Population interface {
	Name() string
	Mean() float64
	StdDev() float64
	Validate() error
	Draw(src sampling.Source, n int) ([]float64, error)
}

// Exponential is Exp(Rate): mean and standard deviation 1/Rate.
type Exponential struct{ Rate float64 }

func (p Exponential) Name() string    { return "exponential" }
func (p Exponential) Mean() float64   { return 1 / p.Rate }
func (p Exponential) StdDev() float64 { return 1 / p.Rate }

func (p Exponential) Validate() error {
	if !(p.Rate > 0) || math.IsInf(p.Rate, 0) {
		return ErrDomain
	}

	return nil
}

func (p Exponential) Draw(src sampling.Source, n int) ([]float64, error) {
	return sampling.Exponential(src, p.Rate, n)
}

// LogNormal is exp(N(Mu, Sigma²)).
type LogNormal struct{ Mu, Sigma float64 }

func (p LogNormal) Name() string  { return "lognormal" }
func (p LogNormal) Mean() float64 { return math.Exp(p.Mu + p.Sigma*p.Sigma/2) }

func (p LogNormal) StdDev() float64 {
	s2 := p.Sigma * p.Sigma

	return math.Sqrt(math.Expm1(s2)) * math.Exp(p.Mu+s2/2)
}

func (p LogNormal) Validate() error {
	if !finite(p.Mu) || !finite(p.Sigma) || p.Sigma < 0 {
		return ErrDomain
	}

	return nil
}

func (p LogNormal) Draw(src sampling.Source, n int) ([]float64, error) {
	return sampling.LogNormal(src, p.Mu, p.Sigma, n)
}

// Uniform is U[Lo, Hi).
type Uniform struct{ Lo, Hi float64 }

func (p Uniform) Name() string    { return "uniform" }
func (p Uniform) Mean() float64   { return (p.Lo + p.Hi) / 2 }
func (p Uniform) StdDev() float64 { return (p.Hi - p.Lo) / math.Sqrt(12) }

func (p Uniform) Validate() error {
	if !finite(p.Lo) || !finite(p.Hi) || p.Hi < p.Lo {
		return ErrDomain
	}

	return nil
}

func (p Uniform) Draw(src sampling.Source, n int) ([]float64, error) {
	return sampling.Uniform(src, p.Lo, p.Hi, n)
}

// Normal is N(Mu, Sigma²).
type Normal struct{ Mu, Sigma float64 }

func (p Normal) Name() string    { return "normal" }
func (p Normal) Mean() float64   { return p.Mu }
func (p Normal) StdDev() float64 { return p.Sigma }

func (p Normal) Validate() error {
	if !finite(p.Mu) || !finite(p.Sigma) || p.Sigma < 0 {
		return ErrDomain
	}

	return nil
}

func (p Normal) Draw(src sampling.Source, n int) ([]float64, error) {
	return sampling.Normal(src, p.Mu, p.Sigma, n)
}

// presets are the dashboard's default populations.
var presets = map[string]Population{
	"exponential": Exponential{Rate: 2},
	"lognormal":   LogNormal{Mu: 0, Sigma: 0.5},
	"uniform":     Uniform{Lo: 0, Hi: 10},
	"normal":      Normal{Mu: 0, Sigma: 1},
}

// Preset returns a named default population: exponential (rate 2),
// lognormal (μ 0, σ 0.5), uniform (0, 10) or normal (0, 1).
func Preset(name string) (Population, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, simulateErrorf(opPreset, ErrUnknownPopulation)
	}

	return p, nil
}

// PresetNames lists the names Preset accepts, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
