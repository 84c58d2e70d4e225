// SPDX-License-Identifier: MIT

package hypothesis

import (
	"fmt"
	"math"
	"strings"
)

// Tail selects the alternative hypothesis.
type Tail int

const (
	// TwoSided tests μ ≠ μ0.
	TwoSided Tail = iota
	// Less tests μ < μ0.
	Less
	// Greater tests μ > μ0.
	Greater
)

func (t Tail) String() string {
	switch t {
	case TwoSided:
		return "two-sided"
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Tail(%d)", int(t))
	}
}

// ParseTail accepts "two-sided" (also "two", "both", ""), "less" and "greater".
func ParseTail(s string) (Tail, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "two-sided", "two", "both":
		return TwoSided, nil
	case "less", "lower", "left":
		return Less, nil
	case "greater", "upper", "right":
		return Greater, nil
	default:
		return TwoSided, fmt.Errorf("parse tail %q: %w", s, ErrDomain)
	}
}

// pValue turns the lower-tail probability F = P(S ≤ s) into a p-value.
func (t Tail) pValue(lower float64) (float64, error) {
	var p float64
	switch t {
	case TwoSided:
		p = 2 * math.Min(lower, 1-lower)
	case Less:
		p = lower
	case Greater:
		p = 1 - lower
	default:
		return math.NaN(), ErrDomain
	}

	return math.Max(0, math.Min(1, p)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Tail) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseTail.
func (t *Tail) UnmarshalText(b []byte) error {
	v, err := ParseTail(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}
