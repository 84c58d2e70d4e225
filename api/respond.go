// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

var (
	// errBadInput marks errors caused by malformed requests.
	errBadInput = errors.New("bad input")

	// errNotRepresentable marks results JSON cannot carry, such as ±Inf.
	errNotRepresentable = errors.New("result not representable as JSON")
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func badInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadInput, fmt.Sprintf(format, args...))
}

// respond encodes v before writing the status, so a result holding ±Inf or
// NaN turns into a 422 instead of a 200 with an empty body.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errNotRepresentable, err))
		return
	}

	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// fail answers 400 for malformed input, 503 when the request was cancelled
// or timed out, and 422 for any calculator error.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, errBadInput):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	reqID := middleware.GetReqID(r.Context())
	s.log.WithFields(log.Fields{"request_id": reqID, "status": status}).WithError(err).Info("request rejected")

	body, _ := json.Marshal(errorBody{Error: err.Error(), RequestID: reqID}) // strings only
	writeBody(w, status, body)
}

func decode(r *http.Request, w http.ResponseWriter, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badInput("decode body: %v", err)
	}

	return nil
}

// queryFloat parses a required query parameter.
func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, badInput("missing query parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, badInput("query parameter %q: %v", name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, badInput("query parameter %q must be finite", name)
	}

	return v, nil
}

// queryFloatOr parses an optional query parameter.
func queryFloatOr(r *http.Request, name string, def float64) (float64, error) {
	if r.URL.Query().Get(name) == "" {
		return def, nil
	}

	return queryFloat(r, name)
}
