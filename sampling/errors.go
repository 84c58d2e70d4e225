// SPDX-License-Identifier: MIT

package sampling

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSource is returned when a nil Source is passed to a generator.
	ErrNilSource = errors.New("sampling: nil source")

	// ErrDomain is returned for invalid distribution parameters or a negative count.
	ErrDomain = errors.New("sampling: parameter outside domain")
)

const (
	opNormal      = "Normal"
	opUniform     = "Uniform"
	opLogNormal   = "LogNormal"
	opExponential = "Exponential"
	opPoisson     = "Poisson"
)

func samplingErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
