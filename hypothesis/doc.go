// SPDX-License-Identifier: MIT

// Package hypothesis composes describe and dist into the classic mean tests:
// one-sample, paired and two-sample t-tests (pooled and Welch), the z-test,
// and t-based confidence intervals for a mean.
//
// Every test returns a Result with the statistic, its degrees of freedom, the
// p-value for the requested Tail, the mean difference, the standard error and
// Cohen's d. p-values always lie in [0, 1].
package hypothesis
