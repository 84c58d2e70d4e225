// SPDX-License-Identifier: MIT

package api

import (
	"net/http"
	"strings"

	"github.com/katalvlaran/quantlab/describe"
	"github.com/katalvlaran/quantlab/hypothesis"
	"github.com/katalvlaran/quantlab/sampling"
	"github.com/katalvlaran/quantlab/simulate"
)

type describeRequest struct {
	Data []float64 `json:"data"`
	Bins int       `json:"bins,omitempty"`
}

type describeResponse struct {
	describe.Summary
	Histogram []describe.Bin `json:"histogram"`
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if err := decode(r, w, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	bins, err := binsOrDefault(req.Bins)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sum, err := describe.Summarize(req.Data)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	hist, err := describe.Histogram(req.Data, bins)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, describeResponse{Summary: sum, Histogram: hist})
}

type ttestRequest struct {
	Kind  string          `json:"kind"`
	X     []float64       `json:"x"`
	Y     []float64       `json:"y,omitempty"`
	Mu0   float64         `json:"mu0,omitempty"`
	Sigma float64         `json:"sigma,omitempty"`
	Tail  hypothesis.Tail `json:"tail"`
	Alpha float64         `json:"alpha,omitempty"`
}

type ttestResponse struct {
	hypothesis.Result
	Kind        string  `json:"kind"`
	Alpha       float64 `json:"alpha"`
	Significant bool    `json:"significant"`
}

// defaultAlpha is the significance level when a request omits one.
const defaultAlpha = 0.05

func (s *Server) handleTTest(w http.ResponseWriter, r *http.Request) {
	var req ttestRequest
	if err := decode(r, w, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	alpha := req.Alpha
	if alpha == 0 {
		alpha = defaultAlpha
	}
	if alpha < 0 || alpha >= 1 {
		s.fail(w, r, badInput("alpha must be in (0,1)"))
		return
	}

	var (
		res hypothesis.Result
		err error
	)
	kind := strings.ToLower(strings.TrimSpace(req.Kind))
	switch kind {
	case "one-sample", "":
		kind = "one-sample"
		res, err = hypothesis.OneSample(req.X, req.Mu0, req.Tail)
	case "paired":
		res, err = hypothesis.Paired(req.X, req.Y, req.Tail)
	case "independent", "pooled":
		kind = "independent"
		res, err = hypothesis.Independent(req.X, req.Y, req.Tail)
	case "welch":
		res, err = hypothesis.Welch(req.X, req.Y, req.Tail)
	case "z":
		res, err = hypothesis.ZTest(req.X, req.Mu0, req.Sigma, req.Tail)
	default:
		s.fail(w, r, badInput("unknown test kind %q", req.Kind))
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, ttestResponse{
		Result:      res,
		Kind:        kind,
		Alpha:       alpha,
		Significant: res.Significant(alpha),
	})
}

type sampleRequest struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
	Seed   *uint64 `json:"seed,omitempty"`
}

type sampleResponse struct {
	Samples []float64         `json:"samples"`
	Summary *describe.Summary `json:"summary,omitempty"`
}

func (s *Server) handleSampleNormal(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if err := decode(r, w, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Count > MaxSampleCount {
		s.fail(w, r, badInput("count exceeds %d", MaxSampleCount))
		return
	}

	src := s.source(req.Seed)
	xs, err := sampling.Normal(src, req.Mean, req.StdDev, req.Count)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := sampleResponse{Samples: xs}
	if len(xs) > 0 {
		sum, err := describe.Summarize(xs)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		resp.Summary = &sum
	}

	s.respond(w, r, http.StatusOK, resp)
}

type cltRequest struct {
	Population string  `json:"population"`
	SampleSize int     `json:"sample_size,omitempty"`
	Count      int     `json:"count"`
	Bins       int     `json:"bins,omitempty"`
	Seed       *uint64 `json:"seed,omitempty"`
}

type cltResponse struct {
	simulate.Stats
	Histogram []describe.Bin `json:"histogram"`
}

func (s *Server) handleCLT(w http.ResponseWriter, r *http.Request) {
	var req cltRequest
	if err := decode(r, w, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Count < 1 || req.Count > MaxCLTMeans {
		s.fail(w, r, badInput("count must be in [1,%d]", MaxCLTMeans))
		return
	}
	sampleSize := req.SampleSize
	if sampleSize == 0 {
		sampleSize = simulate.DefaultSampleSize
	}
	if sampleSize < 0 || sampleSize > MaxCLTDraws/req.Count {
		s.fail(w, r, badInput("sample_size must be positive and count·sample_size at most %d", MaxCLTDraws))
		return
	}
	bins, err := binsOrDefault(req.Bins)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	pop, err := simulate.Preset(req.Population)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	engine, err := simulate.New(pop,
		simulate.WithSource(s.source(req.Seed)),
		simulate.WithSampleSize(sampleSize),
	)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err = engine.Run(r.Context(), req.Count, cltBatch, nil); err != nil {
		s.fail(w, r, err)
		return
	}

	hist, err := engine.Histogram(bins)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, cltResponse{Stats: engine.Stats(), Histogram: hist})
}

// binsOrDefault applies describe.DefaultBins to 0 and bounds the rest.
func binsOrDefault(bins int) (int, error) {
	switch {
	case bins == 0:
		return describe.DefaultBins, nil
	case bins < 0 || bins > MaxBins:
		return 0, badInput("bins must be in [1,%d]", MaxBins)
	default:
		return bins, nil
	}
}

// source returns a generator for an explicit seed, or a fresh derived stream.
func (s *Server) source(seed *uint64) sampling.Source {
	if seed != nil {
		return sampling.NewSource(*seed)
	}

	return sampling.DeriveSource(s.seed, s.nextStream())
}
