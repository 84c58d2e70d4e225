// SPDX-License-Identifier: MIT

// Package special implements the special functions that the distribution
// packages are built on.
//
// What is inside?
//
//	• Gamma / LnGamma  — Lanczos approximation (g=7, 8 coefficients)
//	• Beta / LnBeta    — complete beta function via LnGamma
//	• RegIncBeta       — regularized incomplete beta Iₓ(a, b)
//
// Gamma has no error path: at the poles (0, -1, -2, …) it returns ±Inf or NaN
// following IEEE-754 semantics. RegIncBeta validates its arguments and returns
// ErrDomain outside x∈[0,1], a>0, b>0.
//
// Iₓ(a, b) is evaluated with the modified Lentz continued fraction. The
// evaluation stops after IncBetaMaxIterations steps or once a step changes the
// estimate by less than IncBetaTolerance, whichever comes first; hitting the cap
// returns the current estimate.
//
// Every function is pure and safe for concurrent use.
//
//	import "github.com/katalvlaran/quantlab/special"
//
//	g := special.Gamma(4.5)                 // 11.6317…
//	p, err := special.RegIncBeta(0.3, 2, 5) // 0.579825
package special
