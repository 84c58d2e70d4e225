// SPDX-License-Identifier: MIT

// Package simulate runs the Central Limit Theorem experiment: repeatedly draw
// a sample of fixed size from a (possibly very non-normal) population and
// record the sample mean. As batches accumulate, the distribution of those
// means approaches N(μ, σ²/n).
//
// A CLT engine owns its random source and its running statistics, so it is
// single-owner: do not share one across goroutines. Distinct engines share
// nothing and can run in parallel.
//
// Batch scheduling (the "add 1000 samples, redraw" loop of an interactive
// dashboard) belongs to the caller; Run is a convenience that steps in batches
// and checks the context between them.
package simulate
