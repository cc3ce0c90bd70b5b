package parabola_test

import (
	"fmt"

	"github.com/cwbudde/algo-peaks/dsp/parabola"
)

func ExampleFit() {
	p := parabola.Fit([]float64{1, 6, 9, 6, 1})
	x, _ := p.Apex()
	fmt.Printf("apex=%.1f concave=%v\n", x, p.Concave())

	// Output:
	// apex=2.0 concave=true
}
