// SPDX-License-Identifier: MIT

package special

import (
	"errors"
	"fmt"
)

// ErrDomain is returned when an argument lies outside the domain of the function.
var ErrDomain = errors.New("special: argument outside domain")

// Operation tags used when wrapping sentinels.
const (
	opRegIncBeta = "RegIncBeta"
)

// specialErrorf wraps err with an operation tag; err must be non-nil.
func specialErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
