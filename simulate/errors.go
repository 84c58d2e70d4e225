// SPDX-License-Identifier: MIT

package simulate

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned for invalid population parameters or counts.
	ErrDomain = errors.New("simulate: parameter outside domain")

	// ErrUnknownPopulation is returned by Preset for an unrecognised name.
	ErrUnknownPopulation = errors.New("simulate: unknown population")

	// ErrTooFewMeans is returned by Normality before three means exist.
	ErrTooFewMeans = errors.New("simulate: too few sample means")
)

const (
	opNew       = "New"
	opStep      = "Step"
	opRun       = "Run"
	opPreset    = "Preset"
	opNormality = "Normality"
)

func simulateErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
