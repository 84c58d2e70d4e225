// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quantlab/api"
	"github.com/katalvlaran/quantlab/internal/config"
)

// shutdownTimeout bounds the graceful shutdown of serve.
const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := &http.Server{
				Addr: a.cfg.Listen,
				Handler: api.New(
					api.WithLogger(a.log),
					api.WithSeed(a.cfg.Seed),
					api.WithPrecision(a.cfg.Precision),
				),
				ReadHeaderTimeout: 5 * time.Second,
			}

			return serve(cmd.Context(), srv, a.log)
		},
	}
	cmd.Flags().String(config.KeyListen, config.Default().Listen, "HTTP listen address")

	return cmd
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *log.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.WithFields(log.Fields{"addr": srv.Addr}).Info("Starting HTTP server")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
