// SPDX-License-Identifier: MIT

package simulate

import (
	"context"
	"math"
	"sort"

	onlinestats "github.com/dgryski/go-onlinestats"

	"github.com/katalvlaran/quantlab/describe"
	"github.com/katalvlaran/quantlab/sampling"
)

// maxNormalityN is the largest sample the Shapiro–Wilk test accepts.
const maxNormalityN = 5000

// CLT is a Central Limit Theorem engine. Build it with New.
type CLT struct {
	pop     Population
	src     sampling.Source
	n       int
	means   []float64
	running *onlinestats.Running
}

// Stats summarises the sample means seen so far next to their theoretical
// values μ and σ/√n.
type Stats struct {
	Population        string  `json:"population" yaml:"population"`
	SampleSize        int     `json:"sample_size" yaml:"sample_size"`
	Count             int     `json:"count" yaml:"count"`
	Mean              float64 `json:"mean" yaml:"mean"`
	StdDev            float64 `json:"std_dev" yaml:"std_dev"`
	TheoreticalMean   float64 `json:"theoretical_mean" yaml:"theoretical_mean"`
	TheoreticalStdErr float64 `json:"theoretical_std_err" yaml:"theoretical_std_err"`
}

// Batch is passed to the Run callback after every batch.
type Batch struct {
	Index int
	Means []float64
	Stats Stats
}

// New builds an engine for pop.
//
// Errors:
//   - ErrDomain when pop is nil or its parameters are invalid.
func New(pop Population, opts ...Option) (*CLT, error) {
	if pop == nil {
		return nil, simulateErrorf(opNew, ErrDomain)
	}
	if err := pop.Validate(); err != nil {
		return nil, simulateErrorf(opNew, err)
	}
	cfg := gatherOptions(opts)

	return &CLT{
		pop:     pop,
		src:     cfg.src,
		n:       cfg.sampleSize,
		running: onlinestats.NewRunning(),
	}, nil
}

// Population returns the population being sampled.
func (c *CLT) Population() Population { return c.pop }

// SampleSize returns the draws averaged into each mean.
func (c *CLT) SampleSize() int { return c.n }

// Step draws k more samples and returns their means.
func (c *CLT) Step(k int) ([]float64, error) {
	if k < 0 {
		return nil, simulateErrorf(opStep, ErrDomain)
	}

	batch := make([]float64, k)
	for i := range batch {
		xs, err := c.pop.Draw(c.src, c.n)
		if err != nil {
			return nil, simulateErrorf(opStep, err)
		}
		m, _ := describe.Mean(xs) // n ≥ 1
		batch[i] = m
		c.running.Push(m)
	}
	c.means = append(c.means, batch...)

	return batch, nil
}

// Run steps until total means have been added, batch at a time, calling
// onBatch after each. It stops early when ctx is done or onBatch fails.
func (c *CLT) Run(ctx context.Context, total, batch int, onBatch func(Batch) error) error {
	if total < 0 || batch <= 0 {
		return simulateErrorf(opRun, ErrDomain)
	}

	for i, done := 0, 0; done < total; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		k := min(batch, total-done)
		means, err := c.Step(k)
		if err != nil {
			return simulateErrorf(opRun, err)
		}
		done += k
		if onBatch == nil {
			continue
		}
		if err = onBatch(Batch{Index: i, Means: means, Stats: c.Stats()}); err != nil {
			return err
		}
	}

	return nil
}

// Stats returns the running summary of all means so far.
func (c *CLT) Stats() Stats {
	s := Stats{
		Population:        c.pop.Name(),
		SampleSize:        c.n,
		Count:             c.running.Len(),
		TheoreticalMean:   c.pop.Mean(),
		TheoreticalStdErr: c.TheoreticalStdErr(),
	}
	if s.Count > 0 {
		s.Mean = c.running.Mean()
	}
	if s.Count > 1 {
		s.StdDev = c.running.Stddev()
	}

	return s
}

// TheoreticalStdErr returns σ/√n, the spread the means converge to.
func (c *CLT) TheoreticalStdErr() float64 {
	return c.pop.StdDev() / math.Sqrt(float64(c.n))
}

// Means returns a copy of every mean recorded so far.
func (c *CLT) Means() []float64 {
	out := make([]float64, len(c.means))
	copy(out, c.means)

	return out
}

// Histogram bins the recorded means.
func (c *CLT) Histogram(bins int) ([]describe.Bin, error) {
	return describe.Histogram(c.means, bins)
}

// Reset discards the recorded means but keeps the source position.
func (c *CLT) Reset() {
	c.means = nil
	c.running = onlinestats.NewRunning()
}

// Normality runs the Shapiro–Wilk test on the most recent (up to 5000) means.
// W near 1 and a large p-value are consistent with normality.
func (c *CLT) Normality() (w, p float64, err error) {
	if len(c.means) < 3 {
		return math.NaN(), math.NaN(), simulateErrorf(opNormality, ErrTooFewMeans)
	}
	tail := c.means[max(0, len(c.means)-maxNormalityN):]
	sorted := make([]float64, len(tail))
	copy(sorted, tail)
	sort.Float64s(sorted)

	w, p, err = onlinestats.SWilk(sorted)
	if err != nil {
		return math.NaN(), math.NaN(), simulateErrorf(opNormality, err)
	}

	return w, p, nil
}
