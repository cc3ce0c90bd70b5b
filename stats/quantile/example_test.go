package quantile_test

import (
	"fmt"

	"github.com/cwbudde/algo-peaks/stats/quantile"
)

func ExampleFromHistogram() {
	hist := quantile.NewHistogram([]int{0, 0, 1, 1, 2})
	fmt.Printf("bins=%.1f %.1f %.1f\n", hist[0], hist[1], hist[2])
	fmt.Printf("median=%.2f\n", quantile.FromHistogram(hist, 0.5))

	// Output:
	// bins=0.4 0.4 0.2
	// median=1.25
}

func ExampleFromValues() {
	fmt.Printf("%.1f\n", quantile.FromValues([]float64{4, 1, 3, 2}, 0.5))

	// Output:
	// 2.5
}
