// SPDX-License-Identifier: MIT

package special_test

import (
	"testing"

	"github.com/katalvlaran/quantlab/special"
)

func BenchmarkGamma(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = special.Gamma(4.5)
	}
}

func BenchmarkRegIncBeta_LargeShape(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := special.RegIncBeta(0.9991, 5000, 0.5); err != nil {
			b.Fatalf("RegIncBeta failed: %v", err)
		}
	}
}
