// SPDX-License-Identifier: MIT

// Package dist provides the probability distributions used by the
// visualizations: the standard normal (PDF, CDF, quantile), general normals,
// Student's t and the Beta distribution.
//
// Conventions:
//   - Probability-valued results are always inside [0, 1].
//   - Invalid parameters (p outside (0,1), df ≤ 0, σ ≤ 0, NaN) are reported as
//     ErrDomain, never as a silent NaN.
//   - The value types (Normal, StudentsT, BetaDist) are validated by their
//     constructors; their methods assume valid parameters.
//
// Algorithms:
//   - Φ(x) = ½·erfc(−x/√2).
//   - Φ⁻¹(p): Acklam's rational approximation refined by one Halley step.
//   - T(t; ν) via the regularized incomplete beta:
//     x = ν/(ν+t²), p = ½·I_x(ν/2, ½), result 1−p for t > 0, p otherwise.
//   - T⁻¹(p; ν): bracketed bisection on the CDF.
package dist
