// SPDX-License-Identifier: MIT

// Command quantlab prints statistical tables, evaluates distributions, runs
// mean tests and simulations, and serves the same calculators over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quantlab/internal/config"
	"github.com/katalvlaran/quantlab/internal/logging"
	"github.com/katalvlaran/quantlab/ztable"
)

var (
	// Version is the semantic version number, set at build time.
	Version = "dev"
	// Build is the build date, set at build time.
	Build string
)

// app carries the resolved settings to every subcommand.
type app struct {
	cfg    config.Config
	log    *log.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.Discard()}
	d := config.Default()

	rootCmd := &cobra.Command{
		Use:           "quantlab",
		Short:         "Statistics and 2x2 linear algebra toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Usage()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer == nil {
				return nil
			}

			return a.closer.Close()
		},
	}

	rootCmd.SetFlagErrorFunc(negativeArgHint)

	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyConfig, "", "Configuration file (default is ./quantlab.{yaml,toml,json})")
	pf.String(config.KeyLogLevel, d.LogLevel, "Log level: trace, debug, info, warn, error")
	pf.String(config.KeyLogFile, d.LogFile, "Write logs to this file instead of stderr")
	pf.Int(config.KeyLogRotateMaxSize, d.LogRotateMaxSize, "Log file maximum size in MB before rotation")
	pf.Int(config.KeyLogRotateMaxBackup, d.LogRotateMaxBackup, "Rotated log files to keep")
	pf.Int(config.KeyLogRotateMaxAge, d.LogRotateMaxAge, "Days to keep rotated log files")
	pf.StringP(config.KeyFormat, "o", d.Format, "Output format: text, json, yaml")
	pf.Int(config.KeyPrecision, d.Precision, "Decimals printed in text output")
	pf.Uint64(config.KeySeed, d.Seed, "Random seed (0 uses the built-in default)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newZTableCmd(a),
		newNormalCmd(a),
		newTCmd(a),
		newEigenCmd(a),
		newInvertCmd(a),
		newDescribeCmd(a),
		newSampleCmd(a),
		newTTestCmd(a),
		newCLTCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

// numericShorthand matches the pflag error for a negative number such as -1 or -.5.
var numericShorthand = regexp.MustCompile(`unknown shorthand flag: '[0-9.]'`)

// negativeArgHint points at -- when a negative positional number was parsed
// as a flag.
func negativeArgHint(cmd *cobra.Command, err error) error {
	if !numericShorthand.MatchString(err.Error()) {
		return err
	}

	return fmt.Errorf("%w (end flags with -- before negative numbers: %s -- -1)", err, cmd.CommandPath())
}

// setup resolves the configuration and opens the logger for cmd.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags(), config.DefaultEnvFile)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Logging())
	if err != nil {
		return err
	}

	a.cfg, a.log, a.closer = cfg, logger, closer
	if cfg.ConfigFile != "" {
		a.log.WithFields(log.Fields{"file": cfg.ConfigFile}).Debug("Using config file")
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quantlab version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quantlab %s\n", Version)
			if Build != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Build: %s\n", Build)
			}
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// outputFormat is the configured format, text when unset.
func (a *app) outputFormat() ztable.Format {
	return a.cfg.OutputFormat()
}
