// SPDX-License-Identifier: MIT

package ztable

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/quantlab/dist"
)

// Z-table layout.
const (
	zRowMin  = -39 // tenths
	zRowMax  = 39
	zColumns = 10 // +0.00 … +0.09
)

// Defaults for the t critical-value table.
var (
	DefaultDFs    = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 40, 60, 120}
	DefaultAlphas = []float64{0.20, 0.10, 0.05, 0.02, 0.01, 0.001}
)

// Table is a labelled grid of values.
type Table struct {
	Title   string   `json:"title" yaml:"title"`
	Corner  string   `json:"corner" yaml:"corner"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Row is one labelled table row.
type Row struct {
	Label  string    `json:"label" yaml:"label"`
	Values []float64 `json:"values" yaml:"values"`
}

// Cell returns the value at (row label, column index).
func (t Table) Cell(label string, col int) (float64, bool) {
	for _, r := range t.Rows {
		if r.Label == label && col >= 0 && col < len(r.Values) {
			return r.Values[col], true
		}
	}

	return 0, false
}

// ZTable returns P(Z ≤ z + c) for row z and column offset c.
func ZTable() Table {
	t := Table{
		Title:   "Standard normal cumulative probabilities P(Z ≤ z)",
		Corner:  "z",
		Columns: make([]string, zColumns),
	}
	for j := range t.Columns {
		t.Columns[j] = fmt.Sprintf("%.2f", float64(j)/100)
	}

	var z float64
	for i := zRowMin; i <= zRowMax; i++ {
		z = float64(i) / 10
		r := Row{Label: fmt.Sprintf("%.1f", z), Values: make([]float64, zColumns)}
		for j := range r.Values {
			r.Values[j] = dist.StdNormalCDF(z + float64(j)/100)
		}
		t.Rows = append(t.Rows, r)
	}

	return t
}

// TCritical returns the two-sided critical values t_{1−α/2, df} for every
// (df, α) pair; rows are df and columns are α.
//
// Errors:
//   - ErrDomain when a df is not positive or an α is outside (0, 1).
func TCritical(dfs, alphas []float64) (Table, error) {
	for _, a := range alphas {
		if math.IsNaN(a) || a <= 0 || a >= 1 {
			return Table{}, ztableErrorf(opTCritical, ErrDomain)
		}
	}

	t := Table{
		Title:   "Two-sided Student's t critical values",
		Corner:  "df \\ α",
		Columns: make([]string, len(alphas)),
	}
	for j, a := range alphas {
		t.Columns[j] = strconv.FormatFloat(a, 'f', -1, 64)
	}

	for _, df := range dfs {
		r := Row{Label: strconv.FormatFloat(df, 'f', -1, 64), Values: make([]float64, len(alphas))}
		for j, a := range alphas {
			v, err := dist.TQuantile(1-a/2, df)
			if err != nil {
				return Table{}, ztableErrorf(opTCritical, ErrDomain)
			}
			r.Values[j] = v
		}
		t.Rows = append(t.Rows, r)
	}

	return t, nil
}
