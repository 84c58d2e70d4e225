// SPDX-License-Identifier: MIT

package mat2

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when |det| is below the tolerance.
	ErrSingular = errors.New("mat2: matrix is singular")

	// ErrZeroVector is returned when a direction vector has ~zero length.
	ErrZeroVector = errors.New("mat2: zero-length vector")

	// ErrNonFinite is returned when an input holds NaN or ±Inf.
	ErrNonFinite = errors.New("mat2: non-finite entry")
)

const (
	opInverse    = "Inverse"
	opSolve      = "Solve"
	opSVD        = "SVD"
	opReflection = "Reflection"
	opProjection = "Projection"
)

func mat2Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
