package quantile

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestNewHistogram(t *testing.T) {
	h := NewHistogram([]int{0, 0, 1, 1, 2})

	if len(h) != Bins {
		t.Fatalf("len = %d, want %d", len(h), Bins)
	}

	want := map[int]float64{0: 0.4, 1: 0.4, 2: 0.2}
	for i, v := range h {
		if !almostEqual(v, want[i], tolerance) {
			t.Fatalf("bin %d = %v, want %v", i, v, want[i])
		}
	}

	if !almostEqual(h.Total(), 1, tolerance) {
		t.Fatalf("total = %v, want 1", h.Total())
	}
}

func TestNewHistogramClampsOutOfRange(t *testing.T) {
	h := NewHistogram([]int{-5, 300, 255, 0})

	if !almostEqual(h[0], 0.5, tolerance) || !almostEqual(h[255], 0.5, tolerance) {
		t.Fatalf("bins 0/255 = %v/%v, want 0.5/0.5", h[0], h[255])
	}
}

func TestNewHistogramEmpty(t *testing.T) {
	h := NewHistogram(nil)

	if len(h) != Bins {
		t.Fatalf("len = %d, want %d", len(h), Bins)
	}
	for i, v := range h {
		if v != 0 {
			t.Fatalf("bin %d = %v, want 0", i, v)
		}
	}

	if q := FromHistogram(h, 0.5); !math.IsNaN(q) {
		t.Fatalf("quantile of empty histogram = %v, want NaN", q)
	}
}

func TestHistogramFromBytes(t *testing.T) {
	a := HistogramFromBytes([]uint8{0, 0, 1, 1, 2})
	b := NewHistogram([]int{0, 0, 1, 1, 2})

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bin %d: bytes %v, ints %v", i, a[i], b[i])
		}
	}
}

func TestFromHistogramSentinels(t *testing.T) {
	hists := []Histogram{
		NewHistogram([]int{0, 0, 1, 1, 2}),
		NewHistogram([]int{128}),
		{0.25, 0.25, 0.5},
	}

	for _, h := range hists {
		if q := FromHistogram(h, 0); q != -1 {
			t.Fatalf("FromHistogram(p=0) = %v, want -1", q)
		}
		if q := FromHistogram(h, -0.3); q != -1 {
			t.Fatalf("FromHistogram(p<0) = %v, want -1", q)
		}
		if q := FromHistogram(h, 1); q != float64(len(h)) {
			t.Fatalf("FromHistogram(p=1) = %v, want %d", q, len(h))
		}
		if q := FromHistogram(h, 1.5); q != float64(len(h)) {
			t.Fatalf("FromHistogram(p>1) = %v, want %d", q, len(h))
		}
	}

	if q := FromHistogram(hists[0], math.NaN()); !math.IsNaN(q) {
		t.Fatalf("FromHistogram(NaN) = %v, want NaN", q)
	}
}

func TestFromHistogramInterpolates(t *testing.T) {
	h := NewHistogram([]int{0, 0, 1, 1, 2})

	tests := []struct {
		p    float64
		want float64
	}{
		{p: 0.2, want: 0.5},
		{p: 0.4, want: 1},
		{p: 0.5, want: 1.25},
		{p: 0.9, want: 2.5},
	}

	for _, tt := range tests {
		if got := FromHistogram(h, tt.p); !almostEqual(got, tt.want, 1e-9) {
			t.Fatalf("FromHistogram(p=%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFromHistogramSkipsEmptyBins(t *testing.T) {
	// Half the mass at 10, half at 200: the median falls on the boundary
	// after bin 10 and every bin up to 200 is empty.
	values := []int{10, 10, 200, 200}
	h := NewHistogram(values)

	if got := FromHistogram(h, 0.5); !almostEqual(got, 11, 1e-9) {
		t.Fatalf("median = %v, want 11", got)
	}

	// Just above the median the CDF is flat until bin 200, so the quantile
	// jumps into that bin.
	got := FromHistogram(h, 0.75)
	if !almostEqual(got, 200.5, 1e-9) {
		t.Fatalf("q(0.75) = %v, want 200.5", got)
	}
}

func TestFromHistogramUniform(t *testing.T) {
	values := make([]int, Bins)
	for i := range values {
		values[i] = i
	}
	h := NewHistogram(values)

	for _, p := range []float64{0.1, 0.25, 0.5, 0.9} {
		want := p * Bins
		if got := FromHistogram(h, p); !almostEqual(got, want, 1e-6) {
			t.Fatalf("FromHistogram(p=%v) = %v, want %v", p, got, want)
		}
	}
}

func TestFromHistogramUnnormalizedInput(t *testing.T) {
	raw := Histogram{2, 2, 1}
	norm := Histogram{0.4, 0.4, 0.2}

	for _, p := range []float64{0.1, 0.5, 0.95} {
		if a, b := FromHistogram(raw, p), FromHistogram(norm, p); !almostEqual(a, b, 1e-9) {
			t.Fatalf("p=%v: raw %v, normalized %v", p, a, b)
		}
	}
}

func TestFromHistogramMonotone(t *testing.T) {
	h := NewHistogram([]int{3, 3, 4, 9, 9, 9, 40, 41, 200})

	prev := math.Inf(-1)
	for p := 0.01; p < 1; p += 0.01 {
		q := FromHistogram(h, p)
		if q < prev {
			t.Fatalf("quantile decreased at p=%v: %v < %v", p, q, prev)
		}
		prev = q
	}
}

func TestFromValues(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	tests := []struct {
		p    float64
		want float64
	}{
		{p: 0.1, want: 1},
		{p: 0.2, want: 1},
		{p: 0.5, want: 2.5},
		{p: 0.7, want: 3.5},
		{p: 0.9, want: 4},
	}

	for _, tt := range tests {
		if got := FromValues(values, tt.p); !almostEqual(got, tt.want, 1e-12) {
			t.Fatalf("FromValues(p=%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if values[0] != 4 || values[1] != 1 || values[2] != 3 || values[3] != 2 {
		t.Fatalf("input mutated: %v", values)
	}
}

func TestFromValuesEdgeCases(t *testing.T) {
	if q := FromValues(nil, 0.5); !math.IsNaN(q) {
		t.Fatalf("FromValues(nil) = %v, want NaN", q)
	}
	if q := FromValues([]float64{7}, 0.5); q != 7 {
		t.Fatalf("FromValues(single) = %v, want 7", q)
	}
	if q := FromValues([]float64{1, 2}, math.NaN()); !math.IsNaN(q) {
		t.Fatalf("FromValues(p=NaN) = %v, want NaN", q)
	}
}

func TestFromValuesBracketsEmpiricalQuantile(t *testing.T) {
	values := make([]float64, 99)
	for i := range values {
		values[i] = float64((i * 37) % 99)
	}

	sorted := make([]float64, len(values))
	for i := range sorted {
		sorted[i] = float64(i)
	}

	for _, p := range []float64{0.1, 0.33, 0.5, 0.8} {
		got := FromValues(values, p)
		ref := stat.Quantile(p, stat.LinInterp, sorted, nil)
		if math.Abs(got-ref) > 1 {
			t.Fatalf("p=%v: FromValues %v too far from gonum %v", p, got, ref)
		}
	}
}
