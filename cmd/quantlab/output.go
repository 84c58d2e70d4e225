// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quantlab/ztable"
)

// field is one labelled line of text output.
type field struct {
	name  string
	value any
}

// emit writes v as JSON or YAML, or fields as an aligned key/value list.
func (a *app) emit(cmd *cobra.Command, v any, fields ...field) error {
	w := cmd.OutOrStdout()

	switch a.outputFormat() {
	case ztable.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case ztable.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\n", f.name, a.formatValue(f.value))
	}

	return tw.Flush()
}

func (a *app) formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', a.cfg.Precision, 64)
	case []float64:
		s := make([]byte, 0, len(x)*8)
		for i, f := range x {
			if i > 0 {
				s = append(s, ' ')
			}
			s = strconv.AppendFloat(s, f, 'f', a.cfg.Precision, 64)
		}
		return string(s)
	default:
		return fmt.Sprint(v)
	}
}
