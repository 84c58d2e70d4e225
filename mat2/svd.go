// SPDX-License-Identifier: MIT

package mat2

import "math"

// SVDResult is m = U·diag(Sigma1, Sigma2)·Vᵀ with Sigma1 ≥ Sigma2 ≥ 0 and
// orthonormal U and V.
type SVDResult struct {
	U      Matrix  `json:"u" yaml:"u"`
	Sigma1 float64 `json:"sigma1" yaml:"sigma1"`
	Sigma2 float64 `json:"sigma2" yaml:"sigma2"`
	V      Matrix  `json:"v" yaml:"v"`
}

// Reconstruct returns U·Σ·Vᵀ.
func (r SVDResult) Reconstruct() Matrix {
	return r.U.Mul(Matrix{A: r.Sigma1, D: r.Sigma2}).Mul(r.V.Transpose())
}

// SVD computes the singular value decomposition of m.
//
// Implementation:
//   - Stage 1: eigendecompose the symmetric AᵀA; v1 is its leading eigenvector.
//   - Stage 2: V = [v1, v1⊥], a rotation.
//   - Stage 3: σ1 = |A·v1|, u1 = A·v1/σ1 (u1 = (1,0) when σ1 is ~0).
//   - Stage 4: σ2 = |det|/σ1 and u2 = sign(det)·u1⊥, so U stays orthonormal
//     even when σ2 is tiny and det(U)·det(V) carries the sign of det m.
//
// Errors:
//   - ErrNonFinite when an entry is NaN or ±Inf.
func SVD(m Matrix, opts ...Option) (SVDResult, error) {
	if !m.IsFinite() {
		return SVDResult{}, mat2Errorf(opSVD, ErrNonFinite)
	}
	o := gatherOptions(opts)

	// AᵀA is symmetric, so a real decomposition always exists.
	eig, _ := Eigen(m.Transpose().Mul(m), opts...)
	v1 := eig.V1
	if v1.IsZero() {
		v1 = Vector{1, 0}
	}

	res := SVDResult{V: FromCols(v1, v1.Perp())}

	av := m.Apply(v1)
	u1 := Vector{1, 0}
	if n := av.Norm(); n > o.eps {
		res.Sigma1 = n
		u1 = av.Scale(1 / n)
	}

	det := m.Det()
	u2 := u1.Perp()
	if res.Sigma1 > 0 {
		res.Sigma2 = math.Min(math.Abs(det)/res.Sigma1, res.Sigma1)
	}
	if det < 0 {
		u2 = u2.Scale(-1)
	}
	res.U = FromCols(u1, u2)

	return res, nil
}
