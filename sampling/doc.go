// SPDX-License-Identifier: MIT

// Package sampling draws pseudo-random variates from an explicit uniform
// source.
//
// There is no package-level generator. Every function takes a Source, which the
// caller either passes in (for example a *rand.Rand from math/rand/v2) or builds
// with NewSource from a seed. Equal seeds give identical streams, so tests and
// simulations that fix a seed are fully deterministic.
//
// Normal variates use the Marsaglia polar method, which is exact rather than the
// sum-of-uniforms approximation. LogNormal builds on it; Exponential uses
// inversion; Poisson uses Knuth's multiplication method, split into chunks for
// large means.
//
// Concurrency: a Source is not safe for concurrent use. Give each goroutine its
// own, e.g. via DeriveSource.
package sampling
