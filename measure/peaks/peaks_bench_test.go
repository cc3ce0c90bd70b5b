package peaks

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-peaks/internal/testutil"
)

func BenchmarkFindPeaks(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		trace := testutil.CalciumTrace(n, 20, 100, 4, testutil.PulseTrain(n, 5, 30))
		cfg := DefaultConfig()
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				FindPeaks(trace, 40, cfg)
			}
		})
	}
}

func BenchmarkEstimatePeriod(b *testing.B) {
	trace := testutil.CalciumTrace(1024, 20, 100, 4, testutil.PulseTrain(1024, 5, 30))

	b.ReportAllocs()
	for range b.N {
		_, _ = EstimatePeriod(trace, 0, 0)
	}
}
