// SPDX-License-Identifier: MIT

package mat2

import (
	"fmt"
	"math"
)

// Matrix is the row-major 2x2 matrix [[A B] [C D]].
type Matrix struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
	D float64 `json:"d" yaml:"d"`
}

// Identity returns I.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Det returns ad − bc.
func (m Matrix) Det() float64 { return m.A*m.D - m.B*m.C }

// Trace returns a + d.
func (m Matrix) Trace() float64 { return m.A + m.D }

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix { return Matrix{m.A, m.C, m.B, m.D} }

// Mul returns the product m·n. Note m.Mul(n) != n.Mul(m) in general.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Add returns m + n.
func (m Matrix) Add(n Matrix) Matrix { return Matrix{m.A + n.A, m.B + n.B, m.C + n.C, m.D + n.D} }

// Sub returns m − n.
func (m Matrix) Sub(n Matrix) Matrix { return Matrix{m.A - n.A, m.B - n.B, m.C - n.C, m.D - n.D} }

// Scale returns k·m.
func (m Matrix) Scale(k float64) Matrix { return Matrix{k * m.A, k * m.B, k * m.C, k * m.D} }

// Apply returns m·v.
func (m Matrix) Apply(v Vector) Vector {
	return Vector{m.A*v.X + m.B*v.Y, m.C*v.X + m.D*v.Y}
}

// Col returns column j (0 or 1) as a vector.
func (m Matrix) Col(j int) Vector {
	if j == 0 {
		return Vector{m.A, m.C}
	}

	return Vector{m.B, m.D}
}

// FromCols builds the matrix whose columns are c0 and c1.
func FromCols(c0, c1 Vector) Matrix {
	return Matrix{A: c0.X, B: c1.X, C: c0.Y, D: c1.Y}
}

// Equal reports whether every entry of m and n differs by at most eps.
func (m Matrix) Equal(n Matrix, eps float64) bool {
	return math.Abs(m.A-n.A) <= eps && math.Abs(m.B-n.B) <= eps &&
		math.Abs(m.C-n.C) <= eps && math.Abs(m.D-n.D) <= eps
}

// IsFinite reports whether no entry is NaN or ±Inf.
func (m Matrix) IsFinite() bool {
	for _, v := range [4]float64{m.A, m.B, m.C, m.D} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("[[%g %g] [%g %g]]", m.A, m.B, m.C, m.D)
}

// Lerp interpolates entry-wise: (1−t)·m + t·n. With m = Identity() it drives
// the "morph the plane into n" animation.
func Lerp(m, n Matrix, t float64) Matrix {
	return m.Scale(1 - t).Add(n.Scale(t))
}

// Inverse returns m⁻¹ = 1/det · [[d −b] [−c a]].
//
// Errors:
//   - ErrNonFinite when an entry is NaN or ±Inf.
//   - ErrSingular when |det| < eps.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts)
	if !m.IsFinite() {
		return Matrix{}, mat2Errorf(opInverse, ErrNonFinite)
	}
	det := m.Det()
	if math.Abs(det) < o.eps {
		return Matrix{}, mat2Errorf(opInverse, ErrSingular)
	}

	return Matrix{m.D / det, -m.B / det, -m.C / det, m.A / det}, nil
}

// Solve returns x with m·x = rhs by Cramer's rule.
func Solve(m Matrix, rhs Vector, opts ...Option) (Vector, error) {
	o := gatherOptions(opts)
	if !m.IsFinite() {
		return Vector{}, mat2Errorf(opSolve, ErrNonFinite)
	}
	det := m.Det()
	if math.Abs(det) < o.eps {
		return Vector{}, mat2Errorf(opSolve, ErrSingular)
	}

	return Vector{
		X: (rhs.X*m.D - m.B*rhs.Y) / det,
		Y: (m.A*rhs.Y - rhs.X*m.C) / det,
	}, nil
}
