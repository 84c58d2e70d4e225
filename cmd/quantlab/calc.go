// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quantlab/dist"
	"github.com/katalvlaran/quantlab/mat2"
)

type valueResult struct {
	Input float64 `json:"input" yaml:"input"`
	Value float64 `json:"value" yaml:"value"`
}

func parseFloatArgs(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func newNormalCmd(a *app) *cobra.Command {
	var mu, sigma float64

	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Evaluate the normal distribution N(mu, sigma²)",
	}
	cmd.PersistentFlags().Float64Var(&mu, "mu", 0, "Mean")
	cmd.PersistentFlags().Float64Var(&sigma, "sigma", 1, "Standard deviation")

	point := func(use, short, example string, fn func(dist.Normal, float64) (float64, error)) *cobra.Command {
		return &cobra.Command{
			Use:     use,
			Short:   short,
			Example: example,
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				xs, err := parseFloatArgs(args)
				if err != nil {
					return err
				}
				n, err := dist.NewNormal(mu, sigma)
				if err != nil {
					return err
				}
				v, err := fn(n, xs[0])
				if err != nil {
					return err
				}

				return a.emit(cmd, valueResult{Input: xs[0], Value: v}, field{"input", xs[0]}, field{"value", v})
			},
		}
	}

	cmd.AddCommand(
		point("cdf <x>", "P(X ≤ x)", "  quantlab normal cdf --mu 10 --sigma 2 -- -1.5", func(n dist.Normal, x float64) (float64, error) { return n.CDF(x), nil }),
		point("pdf <x>", "Density at x", "  quantlab normal pdf -- -1", func(n dist.Normal, x float64) (float64, error) { return n.PDF(x), nil }),
		point("quantile <p>", "x with P(X ≤ x) = p", "  quantlab normal quantile --mu 10 0.975", dist.Normal.Quantile),
	)

	return cmd
}

type tResult struct {
	T         float64 `json:"t" yaml:"t"`
	DF        float64 `json:"df" yaml:"df"`
	CDF       float64 `json:"cdf" yaml:"cdf"`
	TwoTailed float64 `json:"two_tailed" yaml:"two_tailed"`
}

func newTCmd(a *app) *cobra.Command {
	var df float64

	cmd := &cobra.Command{
		Use:   "t",
		Short: "Evaluate Student's t distribution",
	}
	cmd.PersistentFlags().Float64Var(&df, "df", 1, "Degrees of freedom")

	cdfCmd := &cobra.Command{
		Use:     "cdf <t>",
		Short:   "P(T ≤ t) and the two-tailed p-value",
		Example: "  quantlab t cdf --df 5 -- -2.015",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloatArgs(args)
			if err != nil {
				return err
			}
			cdf, err := dist.TCDF(xs[0], df)
			if err != nil {
				return err
			}
			two, err := dist.TTwoTailed(xs[0], df)
			if err != nil {
				return err
			}
			res := tResult{T: xs[0], DF: df, CDF: cdf, TwoTailed: two}

			return a.emit(cmd, res, field{"t", res.T}, field{"df", res.DF}, field{"cdf", res.CDF}, field{"two-tailed", res.TwoTailed})
		},
	}

	quantileCmd := &cobra.Command{
		Use:   "quantile <p>",
		Short: "t with P(T ≤ t) = p",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloatArgs(args)
			if err != nil {
				return err
			}
			q, err := dist.TQuantile(xs[0], df)
			if err != nil {
				return err
			}

			return a.emit(cmd, valueResult{Input: xs[0], Value: q}, field{"p", xs[0]}, field{"t", q})
		},
	}

	cmd.AddCommand(cdfCmd, quantileCmd)

	return cmd
}

func matrixFromArgs(args []string) (mat2.Matrix, error) {
	xs, err := parseFloatArgs(args)
	if err != nil {
		return mat2.Matrix{}, err
	}

	return mat2.Matrix{A: xs[0], B: xs[1], C: xs[2], D: xs[3]}, nil
}

type eigenOutput struct {
	Real   bool              `json:"real" yaml:"real"`
	Matrix mat2.Matrix       `json:"matrix" yaml:"matrix"`
	Det    float64           `json:"det" yaml:"det"`
	Trace  float64           `json:"trace" yaml:"trace"`
	Eigen  *mat2.EigenResult `json:"eigen,omitempty" yaml:"eigen,omitempty"`
}

func newEigenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "eigen <a> <b> <c> <d>",
		Short:   "Eigenvalues and unit eigenvectors of [[a b] [c d]]",
		Example: "  quantlab eigen -- 0 -1 1 0",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixFromArgs(args)
			if err != nil {
				return err
			}
			out := eigenOutput{Matrix: m, Det: m.Det(), Trace: m.Trace()}
			res, ok := mat2.Eigen(m)
			if !ok {
				return a.emit(cmd, out, field{"matrix", m}, field{"real", false})
			}
			out.Real, out.Eigen = true, &res

			return a.emit(cmd, out,
				field{"matrix", m},
				field{"lambda1", res.Lambda1},
				field{"lambda2", res.Lambda2},
				field{"v1", []float64{res.V1.X, res.V1.Y}},
				field{"v2", []float64{res.V2.X, res.V2.Y}},
			)
		},
	}
}

type inverseOutput struct {
	Matrix  mat2.Matrix `json:"matrix" yaml:"matrix"`
	Det     float64     `json:"det" yaml:"det"`
	Inverse mat2.Matrix `json:"inverse" yaml:"inverse"`
}

func newInvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "invert <a> <b> <c> <d>",
		Short:   "Inverse of [[a b] [c d]]",
		Example: "  quantlab invert -- 4 7 2 -6",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixFromArgs(args)
			if err != nil {
				return err
			}
			inv, err := mat2.Inverse(m)
			if err != nil {
				return err
			}
			out := inverseOutput{Matrix: m, Det: m.Det(), Inverse: inv}

			return a.emit(cmd, out,
				field{"det", out.Det},
				field{"inverse", []float64{inv.A, inv.B, inv.C, inv.D}},
			)
		},
	}
}
