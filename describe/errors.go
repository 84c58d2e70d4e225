// SPDX-License-Identifier: MIT

package describe

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySample is returned when a statistic is requested for an empty sample.
	ErrEmptySample = errors.New("describe: empty sample")

	// ErrInsufficientData is returned when the sample is too small for the statistic.
	ErrInsufficientData = errors.New("describe: insufficient data")

	// ErrDomain is returned for an invalid parameter such as a non-positive bin count.
	ErrDomain = errors.New("describe: parameter outside domain")
)

func describeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
