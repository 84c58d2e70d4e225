// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"github.com/katalvlaran/quantlab/mat2"
)

type eigenResponse struct {
	Real bool `json:"real"`
	*mat2.EigenResult
}

type inverseResponse struct {
	Det     float64     `json:"det"`
	Inverse mat2.Matrix `json:"inverse"`
}

type multiplyRequest struct {
	Left  mat2.Matrix `json:"left"`
	Right mat2.Matrix `json:"right"`
}

type multiplyResponse struct {
	Product   mat2.Matrix `json:"product"`
	Transpose mat2.Matrix `json:"transpose"`
	Det       float64     `json:"det"`
}

func (s *Server) handleEigen(w http.ResponseWriter, r *http.Request) {
	var m mat2.Matrix
	if err := decode(r, w, &m); err != nil {
		s.fail(w, r, err)
		return
	}

	res, ok := mat2.Eigen(m)
	if !ok {
		s.respond(w, r, http.StatusOK, eigenResponse{Real: false})
		return
	}

	s.respond(w, r, http.StatusOK, eigenResponse{Real: true, EigenResult: &res})
}

func (s *Server) handleInverse(w http.ResponseWriter, r *http.Request) {
	var m mat2.Matrix
	if err := decode(r, w, &m); err != nil {
		s.fail(w, r, err)
		return
	}

	inv, err := mat2.Inverse(m)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, inverseResponse{Det: m.Det(), Inverse: inv})
}

func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	var req multiplyRequest
	if err := decode(r, w, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	p := req.Left.Mul(req.Right)
	s.respond(w, r, http.StatusOK, multiplyResponse{Product: p, Transpose: p.Transpose(), Det: p.Det()})
}
