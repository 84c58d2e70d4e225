// SPDX-License-Identifier: MIT

package sampling_test

import (
	"testing"

	"github.com/katalvlaran/quantlab/sampling"
)

func BenchmarkNormal1k(b *testing.B) {
	src := sampling.NewSource(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = sampling.Normal(src, 0, 1, 1000)
	}
}
