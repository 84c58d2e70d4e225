// SPDX-License-Identifier: MIT

package ztable

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects the Render output.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultPrecision is the number of decimals rendered per cell.
const DefaultPrecision = 4

// ParseFormat accepts text, json, yaml (or yml), case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	default:
		return "", ztableErrorf(opParseFormat, ErrFormat)
	}
}

// Render writes t to w with each value rounded to precision decimals.
// A negative precision means DefaultPrecision.
func Render(w io.Writer, t Table, f Format, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}

	var err error
	switch f {
	case FormatText:
		err = renderText(w, t, precision)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(Rounded(t, precision))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(Rounded(t, precision)); err == nil {
			err = enc.Close()
		}
	default:
		err = ErrFormat
	}
	if err != nil {
		return ztableErrorf(opRender, err)
	}

	return nil
}

func renderText(w io.Writer, t Table, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if t.Title != "" {
		if _, err := fmt.Fprintln(w, t.Title); err != nil {
			return err
		}
	}
	fmt.Fprintf(tw, "%s\t%s\t\n", t.Corner, strings.Join(t.Columns, "\t"))
	cells := make([]string, 0, len(t.Columns))
	for _, r := range t.Rows {
		cells = cells[:0]
		for _, v := range r.Values {
			cells = append(cells, fmt.Sprintf("%.*f", precision, v))
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", r.Label, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// Rounded returns a copy of t with every value rounded to precision decimals.
func Rounded(t Table, precision int) Table {
	scale := math.Pow(10, float64(precision))
	out := Table{Title: t.Title, Corner: t.Corner, Columns: append([]string(nil), t.Columns...)}
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		vals := make([]float64, len(r.Values))
		for j, v := range r.Values {
			vals[j] = math.Round(v*scale) / scale
		}
		out.Rows[i] = Row{Label: r.Label, Values: vals}
	}

	return out
}
