// SPDX-License-Identifier: MIT

package describe_test

import (
	"fmt"

	"github.com/katalvlaran/quantlab/describe"
)

func ExampleVariance() {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	m, _ := describe.Mean(xs)
	v, _ := describe.Variance(xs)
	fmt.Printf("mean=%.1f variance=%.4f\n", m, v)
	// Output: mean=5.0 variance=4.5714
}
