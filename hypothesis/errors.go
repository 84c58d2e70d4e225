// SPDX-License-Identifier: MIT

package hypothesis

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when paired samples differ in length.
	ErrLengthMismatch = errors.New("hypothesis: paired samples differ in length")

	// ErrZeroVariance is returned when the standard error is zero and the
	// statistic is undefined.
	ErrZeroVariance = errors.New("hypothesis: zero variance, statistic undefined")

	// ErrBadLevel is returned for a confidence level outside (0, 1).
	ErrBadLevel = errors.New("hypothesis: confidence level must be in (0, 1)")

	// ErrDomain is returned for an invalid parameter such as σ ≤ 0 or an unknown tail.
	ErrDomain = errors.New("hypothesis: parameter outside domain")
)

const (
	opOneSample   = "OneSample"
	opPaired      = "Paired"
	opIndependent = "Independent"
	opWelch       = "Welch"
	opZTest       = "ZTest"
	opMeanCI      = "MeanCI"
)

func hypothesisErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
