// SPDX-License-Identifier: MIT

package ztable

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned for invalid degrees of freedom or significance levels.
	ErrDomain = errors.New("ztable: parameter outside domain")

	// ErrFormat is returned for an unknown output format.
	ErrFormat = errors.New("ztable: unknown format")
)

const (
	opTCritical   = "TCritical"
	opRender      = "Render"
	opParseFormat = "ParseFormat"
)

func ztableErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
