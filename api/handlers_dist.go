// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/katalvlaran/quantlab/dist"
	"github.com/katalvlaran/quantlab/ztable"
)

type valueResponse struct {
	Input float64 `json:"input"`
	Value float64 `json:"value"`
}

type tCDFResponse struct {
	T         float64 `json:"t"`
	DF        float64 `json:"df"`
	CDF       float64 `json:"cdf"`
	TwoTailed float64 `json:"two_tailed"`
}

// normalFromQuery reads the optional mu and sigma parameters.
func normalFromQuery(r *http.Request) (dist.Normal, error) {
	mu, err := queryFloatOr(r, "mu", 0)
	if err != nil {
		return dist.Normal{}, err
	}
	sigma, err := queryFloatOr(r, "sigma", 1)
	if err != nil {
		return dist.Normal{}, err
	}

	return dist.NewNormal(mu, sigma)
}

func (s *Server) handleNormalCDF(w http.ResponseWriter, r *http.Request) {
	s.normalPoint(w, r, "x", func(n dist.Normal, x float64) (float64, error) {
		return n.CDF(x), nil
	})
}

func (s *Server) handleNormalPDF(w http.ResponseWriter, r *http.Request) {
	s.normalPoint(w, r, "x", func(n dist.Normal, x float64) (float64, error) {
		return n.PDF(x), nil
	})
}

func (s *Server) handleNormalQuantile(w http.ResponseWriter, r *http.Request) {
	s.normalPoint(w, r, "p", dist.Normal.Quantile)
}

func (s *Server) normalPoint(w http.ResponseWriter, r *http.Request, param string, fn func(dist.Normal, float64) (float64, error)) {
	x, err := queryFloat(r, param)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	n, err := normalFromQuery(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := fn(n, x)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, valueResponse{Input: x, Value: v})
}

func (s *Server) handleTCDF(w http.ResponseWriter, r *http.Request) {
	t, err := queryFloat(r, "t")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	df, err := queryFloat(r, "df")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	cdf, err := dist.TCDF(t, df)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	two, err := dist.TTwoTailed(t, df)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, tCDFResponse{T: t, DF: df, CDF: cdf, TwoTailed: two})
}

func (s *Server) handleTQuantile(w http.ResponseWriter, r *http.Request) {
	p, err := queryFloat(r, "p")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	df, err := queryFloat(r, "df")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	q, err := dist.TQuantile(p, df)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, valueResponse{Input: p, Value: q})
}

var contentTypes = map[ztable.Format]string{
	ztable.FormatText: "text/plain; charset=utf-8",
	ztable.FormatJSON: "application/json",
	ztable.FormatYAML: "application/yaml",
}

func (s *Server) handleZTable(w http.ResponseWriter, r *http.Request) {
	f, err := ztable.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.fail(w, r, badInput("%v", err))
		return
	}
	if r.URL.Query().Get("format") == "" {
		f = ztable.FormatJSON
	}

	precision := s.precision
	if raw := r.URL.Query().Get("precision"); raw != "" {
		if precision, err = strconv.Atoi(raw); err != nil || precision < 0 || precision > 15 {
			s.fail(w, r, badInput("precision must be an integer in [0,15]"))
			return
		}
	}

	var buf bytes.Buffer
	if err = ztable.Render(&buf, ztable.ZTable(), f, precision); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[f])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
