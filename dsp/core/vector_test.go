package core

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-peaks/internal/testutil"
)

func TestSumAndMean(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	if got := Sum(x); got != 10 {
		t.Fatalf("Sum = %v, want 10", got)
	}
	if got := Mean(x); got != 2.5 {
		t.Fatalf("Mean = %v, want 2.5", got)
	}
	if Sum(nil) != 0 || Mean(nil) != 0 {
		t.Fatal("empty input should reduce to 0")
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "equal length", a: []float64{1, 2, 3}, b: []float64{4, 5, 6}, want: 32},
		{name: "shorter b", a: []float64{1, 2, 3}, b: []float64{2, 2}, want: 6},
		{name: "empty", a: nil, b: []float64{1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dot(tt.a, tt.b); got != tt.want {
				t.Fatalf("Dot = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMul(t *testing.T) {
	got := Mul([]float64{1, -2, 3, 9}, []float64{2, 2, 0.5})
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, -4, 1.5}, 0)

	if len(Mul(nil, nil)) != 0 {
		t.Fatal("Mul of empty slices should be empty")
	}
}

func TestNorm(t *testing.T) {
	if got := Norm([]float64{3, 4}); got != 5 {
		t.Fatalf("Norm = %v, want 5", got)
	}
	if got := Norm(nil); got != 0 {
		t.Fatalf("Norm(nil) = %v, want 0", got)
	}
}

func TestScale(t *testing.T) {
	x := []float64{1, 2, 3}
	got := Scale(x, -0.5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{-0.5, -1, -1.5}, 0)
	testutil.RequireSliceNearlyEqual(t, x, []float64{1, 2, 3}, 0)
}

func TestVectorMatchesScalarLoop(t *testing.T) {
	a := testutil.DeterministicNoise(1, 3, 257)
	b := testutil.DeterministicNoise(2, 3, 257)

	var dot, sum float64
	for i := range a {
		dot += a[i] * b[i]
		sum += a[i]
	}

	if math.Abs(Dot(a, b)-dot) > 1e-9 {
		t.Fatalf("Dot = %v, want %v", Dot(a, b), dot)
	}
	if math.Abs(Sum(a)-sum) > 1e-9 {
		t.Fatalf("Sum = %v, want %v", Sum(a), sum)
	}
}
