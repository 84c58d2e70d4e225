// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quantlab/describe"
	"github.com/katalvlaran/quantlab/hypothesis"
	"github.com/katalvlaran/quantlab/sampling"
	"github.com/katalvlaran/quantlab/simulate"
)

// readNumbers parses numbers separated by whitespace, commas or semicolons.
func readNumbers(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens := strings.FieldsFunc(string(data), func(c rune) bool {
		return unicode.IsSpace(c) || c == ',' || c == ';'
	})

	return parseFloatArgs(tokens)
}

// sampleInput takes numbers from args, or from file ("-" is stdin).
func sampleInput(cmd *cobra.Command, args []string, file string) ([]float64, error) {
	if file == "" {
		return parseFloatArgs(args)
	}
	if len(args) > 0 {
		return nil, errors.New("pass numbers as arguments or with --file, not both")
	}
	if file == "-" {
		return readNumbers(cmd.InOrStdin())
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readNumbers(f)
}

func newDescribeCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "describe [x...]",
		Short: "Descriptive statistics of a sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := sampleInput(cmd, args, file)
			if err != nil {
				return err
			}
			s, err := describe.Summarize(xs)
			if err != nil {
				return err
			}

			fields := []field{
				{"n", s.N}, {"mean", s.Mean}, {"median", s.Median}, {"mode", s.Mode},
				{"min", s.Min}, {"q1", s.Q1}, {"q3", s.Q3}, {"max", s.Max},
			}
			if s.HasSpread {
				fields = append(fields, field{"variance", s.Variance}, field{"std-dev", s.StdDev}, field{"std-err", s.StdErr})
			}
			if s.HasSkewness {
				fields = append(fields, field{"skewness", s.Skewness})
			}
			if s.HasKurtosis {
				fields = append(fields, field{"kurtosis", s.Kurtosis})
			}

			return a.emit(cmd, s, fields...)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the sample from a file, - for stdin")

	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var (
		mean, stdDev float64
		count        int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw normal variates with the configured seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := sampling.Normal(sampling.NewSource(a.cfg.Seed), mean, stdDev, count)
			if err != nil {
				return err
			}
			a.log.WithFields(log.Fields{"count": count, "seed": a.cfg.Seed}).Debug("Drew normal sample")

			return a.emit(cmd, xs, field{"samples", xs})
		},
	}
	cmd.Flags().Float64Var(&mean, "mean", 0, "Mean")
	cmd.Flags().Float64Var(&stdDev, "std-dev", 1, "Standard deviation")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of draws")

	return cmd
}

type testOutput struct {
	hypothesis.Result `yaml:",inline"`
	Kind              string  `json:"kind" yaml:"kind"`
	Alpha             float64 `json:"alpha" yaml:"alpha"`
	Significant       bool    `json:"significant" yaml:"significant"`
}

func newTTestCmd(a *app) *cobra.Command {
	var (
		kind, tail        string
		x, y              []float64
		mu0, sigma, alpha float64
	)

	cmd := &cobra.Command{
		Use:   "ttest",
		Short: "One-sample, paired, pooled or Welch t-test, or a z-test",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := hypothesis.ParseTail(tail)
			if err != nil {
				return err
			}

			var res hypothesis.Result
			switch kind {
			case "one-sample":
				res, err = hypothesis.OneSample(x, mu0, t)
			case "paired":
				res, err = hypothesis.Paired(x, y, t)
			case "independent":
				res, err = hypothesis.Independent(x, y, t)
			case "welch":
				res, err = hypothesis.Welch(x, y, t)
			case "z":
				res, err = hypothesis.ZTest(x, mu0, sigma, t)
			default:
				return fmt.Errorf("unknown kind %q: want one-sample, paired, independent, welch or z", kind)
			}
			if err != nil {
				return err
			}

			out := testOutput{Result: res, Kind: kind, Alpha: alpha, Significant: res.Significant(alpha)}
			fields := []field{
				{"kind", kind}, {"tail", res.Tail}, {"statistic", res.Statistic},
			}
			if kind != "z" {
				fields = append(fields, field{"df", res.DF})
			}
			fields = append(fields,
				field{"p-value", res.PValue},
				field{"mean-diff", res.MeanDiff},
				field{"std-err", res.StdErr},
				field{"effect-size", res.EffectSize},
				field{"significant", out.Significant},
			)

			return a.emit(cmd, out, fields...)
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "welch", "Test: one-sample, paired, independent, welch, z")
	f.StringVar(&tail, "tail", "two-sided", "Alternative: two-sided, less, greater")
	f.Float64SliceVar(&x, "x", nil, "First sample, comma separated")
	f.Float64SliceVar(&y, "y", nil, "Second sample, comma separated")
	f.Float64Var(&mu0, "mu0", 0, "Hypothesised mean for one-sample and z tests")
	f.Float64Var(&sigma, "sigma", 1, "Known population standard deviation for the z-test")
	f.Float64Var(&alpha, "alpha", 0.05, "Significance level")

	return cmd
}

func newCLTCmd(a *app) *cobra.Command {
	var (
		population        string
		sampleSize, count int
		batch, bins       int
		histogram         bool
	)

	cmd := &cobra.Command{
		Use:   "clt",
		Short: "Simulate the Central Limit Theorem",
		Long: "Draws sample-size values from a population, records each sample mean,\n" +
			"and compares the spread of the means with σ/√n. Populations: " +
			strings.Join(simulate.PresetNames(), ", ") + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sampleSize < 1 {
				return fmt.Errorf("sample-size must be at least 1, got %d", sampleSize)
			}
			pop, err := simulate.Preset(population)
			if err != nil {
				return err
			}
			engine, err := simulate.New(pop, simulate.WithSampleSize(sampleSize), simulate.WithSeed(a.cfg.Seed))
			if err != nil {
				return err
			}

			err = engine.Run(cmd.Context(), count, batch, func(b simulate.Batch) error {
				a.log.WithFields(log.Fields{
					"batch": b.Index,
					"count": b.Stats.Count,
					"mean":  b.Stats.Mean,
				}).Debug("CLT batch")
				return nil
			})
			if err != nil {
				return err
			}

			st := engine.Stats()
			if err = a.emit(cmd, st,
				field{"population", st.Population},
				field{"sample-size", st.SampleSize},
				field{"means", st.Count},
				field{"mean", st.Mean},
				field{"theoretical-mean", st.TheoreticalMean},
				field{"std-dev", st.StdDev},
				field{"theoretical-std-err", st.TheoreticalStdErr},
			); err != nil {
				return err
			}
			if !histogram {
				return nil
			}

			hist, err := engine.Histogram(bins)
			if err != nil {
				return err
			}
			fields := make([]field, len(hist))
			for i, b := range hist {
				fields[i] = field{a.formatValue(b.Mid()), strings.Repeat("#", barWidth(b.Count, hist))}
			}

			return a.emit(cmd, hist, fields...)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&population, "population", "p", "exponential", "Population preset")
	f.IntVar(&sampleSize, "sample-size", simulate.DefaultSampleSize, "Draws averaged into each mean")
	f.IntVarP(&count, "count", "n", 1000, "Number of sample means")
	f.IntVar(&batch, "batch", 100, "Means drawn per batch")
	f.IntVar(&bins, "bins", 20, "Histogram bins")
	f.BoolVar(&histogram, "histogram", false, "Also print a histogram of the means")

	return cmd
}

// histogramWidth is the longest bar printed by clt --histogram.
const histogramWidth = 50

func barWidth(count int, hist []describe.Bin) int {
	peak := 0
	for _, b := range hist {
		peak = max(peak, b.Count)
	}
	if peak == 0 {
		return 0
	}

	return count * histogramWidth / peak
}
