// SPDX-License-Identifier: MIT

package dist_test

import (
	"testing"

	"github.com/katalvlaran/quantlab/dist"
)

var sink float64

func BenchmarkStdNormalQuantile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = dist.StdNormalQuantile(0.975)
	}
}

func BenchmarkTCDF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = dist.TCDF(2.1, 17)
	}
}

func BenchmarkTQuantile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = dist.TQuantile(0.975, 17)
	}
}
