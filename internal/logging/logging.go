// SPDX-License-Identifier: MIT

// Package logging builds the logrus logger shared by the CLI and the HTTP server.
// Library packages never log; only the outer surfaces do.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults, in megabytes, files and days.
const (
	DefaultMaxSize    = 5
	DefaultMaxBackups = 7
	DefaultMaxAge     = 7
)

// Options configures New. The zero value logs at info level to stderr.
type Options struct {
	Level      string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Output     io.Writer // overrides stderr when File is empty
}

// New returns a logger with a full-timestamp text formatter.
// When File is set, output goes to a lumberjack-rotated file and the
// returned io.Closer releases it; otherwise the closer is a no-op.
func New(opts Options) (*log.Logger, io.Closer, error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	if opts.File == "" {
		out := opts.Output
		if out == nil {
			out = os.Stderr
		}
		logger.SetOutput(out)

		return logger, nopCloser{}, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    orDefault(opts.MaxSize, DefaultMaxSize),
		MaxBackups: orDefault(opts.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(opts.MaxAge, DefaultMaxAge),
		Compress:   opts.Compress,
		LocalTime:  true,
	}
	logger.SetOutput(rotator)

	return logger, rotator, nil
}

// Discard returns a logger that drops everything. Tests and library callers use it.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)

	return logger
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}

	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
