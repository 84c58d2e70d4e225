// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/quantlab/internal/logging"
	"github.com/katalvlaran/quantlab/ztable"
)

// Request size limits.
const (
	MaxBodyBytes   = 8 << 20
	MaxSampleCount = 1_000_000
	MaxCLTMeans    = 100_000
	// MaxCLTDraws bounds count·sample_size of one /clt request.
	MaxCLTDraws = 50_000_000
	// MaxBins bounds the histogram bins of /describe and /clt.
	MaxBins = 10_000
)

// cltBatch is the number of means drawn between cancellation checks.
const cltBatch = 1000

// Server routes requests to the calculators.
type Server struct {
	router    *chi.Mux
	log       *log.Logger
	seed      uint64
	precision int
	streams   atomic.Uint64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("api: WithLogger: logger must be non-nil")
	}

	return func(s *Server) { s.log = l }
}

// WithSeed sets the base seed used when a sampling request carries none.
// Each such request draws from its own derived stream.
func WithSeed(seed uint64) Option {
	return func(s *Server) { s.seed = seed }
}

// WithPrecision sets the default decimals of /ztable.
func WithPrecision(p int) Option {
	return func(s *Server) { s.precision = p }
}

// New builds a Server with its middleware and routes.
func New(opts ...Option) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		log:       logging.Discard(),
		precision: ztable.DefaultPrecision,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(requestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/normal/cdf", s.handleNormalCDF)
	s.router.Get("/normal/pdf", s.handleNormalPDF)
	s.router.Get("/normal/quantile", s.handleNormalQuantile)
	s.router.Get("/t/cdf", s.handleTCDF)
	s.router.Get("/t/quantile", s.handleTQuantile)
	s.router.Get("/ztable", s.handleZTable)

	s.router.Post("/describe", s.handleDescribe)
	s.router.Route("/matrix", func(r chi.Router) {
		r.Post("/eigen", s.handleEigen)
		r.Post("/inverse", s.handleInverse)
		r.Post("/multiply", s.handleMultiply)
	})
	s.router.Post("/ttest", s.handleTTest)
	s.router.Post("/sample/normal", s.handleSampleNormal)
	s.router.Post("/clt", s.handleCLT)
}

// requestID tags every request with a UUID unless the client sent an id.
// The id is echoed in the response header and readable via middleware.GetReqID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(middleware.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		entry := s.log.WithFields(log.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start),
		})
		if ww.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Debug("request served")
	})
}

// nextStream hands out a fresh stream index for unseeded sampling requests.
func (s *Server) nextStream() uint64 {
	return s.streams.Add(1)
}
