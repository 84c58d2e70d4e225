// SPDX-License-Identifier: MIT

package api_test

import (
	"io"

	log "github.com/sirupsen/logrus"
)

func logrusTo(w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(log.DebugLevel)

	return l
}
