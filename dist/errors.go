// SPDX-License-Identifier: MIT

package dist

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates an argument or parameter outside the valid domain
	// (p ∉ (0,1) for quantiles, df ≤ 0, σ ≤ 0, α/β ≤ 0, NaN inputs).
	ErrDomain = errors.New("dist: argument outside domain")

	// ErrOverflow indicates a quantile beyond the float64 range, as happens
	// for p near 0 or 1 with very small degrees of freedom.
	ErrOverflow = errors.New("dist: result exceeds float64 range")
)

// Operation tags for error wrapping.
const (
	opStdNormalQuantile = "StdNormalQuantile"
	opNewNormal         = "NewNormal"
	opNormalQuantile    = "Normal.Quantile"
	opTCDF              = "TCDF"
	opTPDF              = "TPDF"
	opTQuantile         = "TQuantile"
	opNewStudentsT      = "NewStudentsT"
	opNewBetaDist       = "NewBetaDist"
)

func distErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
