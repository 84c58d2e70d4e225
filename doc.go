// SPDX-License-Identifier: MIT

// Package quantlab is a small numerical toolkit for introductory statistics
// and 2x2 linear algebra: the math behind z-tables, t-tests, sampling
// demonstrations and matrix visualisations.
//
// 🚀 What is quantlab?
//
//	A pure-Go, allocation-light library plus a CLI and a JSON API:
//		• Special functions: Lanczos gamma, regularized incomplete beta
//		• Distributions: normal PDF/CDF/quantile, Student's t, Beta
//		• Descriptive statistics: mean, variance, stdDev, quartiles, histogram
//		• Sampling: injectable seeded sources, normal and friends
//		• 2x2 linear algebra: det, inverse, multiply, transpose, eigen, SVD
//		• Mean tests: one-sample, paired, pooled, Welch, z; confidence intervals
//		• Central Limit Theorem simulator and printable z / t tables
//
// Everything is organized under these subpackages:
//
//	special/    — gamma, log-gamma, beta, incomplete beta
//	dist/       — Normal, StudentsT, BetaDist and free-function shortcuts
//	describe/   — Mean, Variance, StdDev, Summarize, Histogram
//	sampling/   — Source, NewSource, DeriveSource, Normal, Uniform, ...
//	mat2/       — Matrix, Vector, Eigen, Inverse, SVD, transforms
//	hypothesis/ — OneSample, Paired, Independent, Welch, ZTest, MeanCI
//	simulate/   — CLT engine over population presets
//	ztable/     — ZTable, TCritical, Render (text, JSON, YAML)
//	api/        — chi router serving the calculators as JSON
//	cmd/quantlab — cobra CLI
//
// Quick example:
//
//	p := dist.StdNormalCDF(1.96)          // 0.9750
//	t, _ := dist.TCDF(2.5, 18)            // 0.9888
//	ev, ok := mat2.Eigen(mat2.Matrix{A: 2, B: 1, C: 1, D: 2})
//	// ok == true, ev.Lambda1 == 3, ev.Lambda2 == 1
//
// Every fallible function returns a package sentinel error wrapped with the
// operation name; match it with errors.Is.
//
//	go install github.com/katalvlaran/quantlab/cmd/quantlab@latest
package quantlab
