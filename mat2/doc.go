// SPDX-License-Identifier: MIT

// Package mat2 is closed-form linear algebra for 2x2 matrices and 2D vectors.
//
// A Matrix{A, B, C, D} is the row-major matrix
//
//	[ A  B ]
//	[ C  D ]
//
// and every operation takes and returns values; nothing is mutated in place.
//
// What it covers:
//   - Arithmetic: Det, Trace, Transpose, Mul, Add, Sub, Scale, Apply, Lerp.
//   - Inverse and Solve (Cramer's rule); both report ErrSingular when
//     |det| < eps.
//   - Eigen: real eigenvalues λ1 ≥ λ2 with unit eigenvectors, or ok == false
//     when the characteristic polynomial has complex roots (rotations).
//   - SVD through the eigendecomposition of AᵀA.
//   - Transform builders: Rotation, Scaling, Shear, Reflection, Projection.
//
// Tolerance:
//
//	The singularity threshold, the "usable off-diagonal" test in Eigen and the
//	"~zero length" test for eigenvectors share one eps, DefaultEpsilon = 1e-9,
//	overridable with WithEpsilon.
package mat2
