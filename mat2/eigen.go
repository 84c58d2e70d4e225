// SPDX-License-Identifier: MIT

package mat2

import "math"

// EigenResult holds real eigenvalues Lambda1 ≥ Lambda2 and unit eigenvectors.
// An eigenvector is the zero vector only when no direction could be resolved.
type EigenResult struct {
	Lambda1 float64 `json:"lambda1" yaml:"lambda1"`
	Lambda2 float64 `json:"lambda2" yaml:"lambda2"`
	V1      Vector  `json:"v1" yaml:"v1"`
	V2      Vector  `json:"v2" yaml:"v2"`
}

// Eigen returns the real eigendecomposition of m, or ok == false when the
// discriminant trace² − 4·det is negative (no real solution, e.g. rotations).
//
// Implementation:
//   - Stage 1: discriminant, evaluated as (a−d)² + 4bc, the same quantity
//     without the cancellation of trace² − 4·det.
//   - Stage 2: λ1,2 = (trace ± √disc)/2, so λ1 ≥ λ2.
//   - Stage 3: for each λ solve (m − λI)v = 0. Each row with an
//     off-diagonal entry above eps yields a candidate: the b row gives
//     (b, λ−a), the c row gives (λ−d, c). When both qualify the longer
//     candidate wins (ties go to the b row); a short candidate is dominated
//     by the rounding error of λ. With neither, m is diagonal and v is the
//     basis vector of the matching diagonal entry, (1,0) when
//     |λ−a| ≤ |λ−d| and (0,1) otherwise.
//   - Stage 4: normalise; a vector shorter than eps stays zero.
//
// For a diagonal matrix with a repeated eigenvalue (m = kI) every direction is
// an eigenvector and the result is V1 = (1,0), V2 = (0,1).
func Eigen(m Matrix, opts ...Option) (EigenResult, bool) {
	o := gatherOptions(opts)

	diff := m.A - m.D
	disc := diff*diff + 4*m.B*m.C
	if disc < 0 || math.IsNaN(disc) {
		return EigenResult{}, false
	}

	root := math.Sqrt(disc)
	tr := m.Trace()
	res := EigenResult{
		Lambda1: (tr + root) / 2,
		Lambda2: (tr - root) / 2,
	}
	res.V1 = normalize(eigenvector(m, res.Lambda1, o.eps), o.eps)
	res.V2 = normalize(eigenvector(m, res.Lambda2, o.eps), o.eps)

	if math.Abs(m.B) <= o.eps && math.Abs(m.C) <= o.eps && res.V1 == res.V2 {
		res.V2 = Vector{0, 1}
	}

	return res, true
}

func eigenvector(m Matrix, lambda, eps float64) Vector {
	useB, useC := math.Abs(m.B) > eps, math.Abs(m.C) > eps
	fromB := Vector{m.B, lambda - m.A}
	fromC := Vector{lambda - m.D, m.C}
	switch {
	case useB && useC:
		if fromC.Norm() > fromB.Norm() {
			return fromC
		}
		return fromB
	case useB:
		return fromB
	case useC:
		return fromC
	case math.Abs(lambda-m.A) <= math.Abs(lambda-m.D):
		return Vector{1, 0}
	default:
		return Vector{0, 1}
	}
}
