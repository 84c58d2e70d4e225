// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quantlab/ztable"
)

func newZTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ztable",
		Short: "Print the standard normal table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ztable.Render(cmd.OutOrStdout(), ztable.ZTable(), a.outputFormat(), a.cfg.Precision)
		},
	}

	var dfs, alphas []float64
	tCmd := &cobra.Command{
		Use:   "t",
		Short: "Print two-sided t critical values by degrees of freedom and α",
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := ztable.TCritical(dfs, alphas)
			if err != nil {
				return err
			}

			return ztable.Render(cmd.OutOrStdout(), tbl, a.outputFormat(), a.cfg.Precision)
		},
	}
	tCmd.Flags().Float64SliceVar(&dfs, "df", ztable.DefaultDFs, "Degrees of freedom rows")
	tCmd.Flags().Float64SliceVar(&alphas, "alpha", ztable.DefaultAlphas, "Significance level columns")

	cmd.AddCommand(tCmd)

	return cmd
}
