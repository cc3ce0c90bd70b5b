package core

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return vecmath.Sum(x)
}

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return Sum(x) / float64(len(x))
}

// Dot returns sum(a[i] * b[i]) over the common prefix of a and b.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	return vecmath.DotProduct(a[:n], b[:n])
}

// Mul returns the element-wise product of a and b in a newly allocated slice.
// Only the common prefix of a and b is used.
func Mul(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	vecmath.MulBlock(out, a[:n], b[:n])

	return out
}

// Norm returns the Euclidean length sqrt(sum(x[i]^2)).
func Norm(x []float64) float64 {
	return math.Sqrt(Dot(x, x))
}

// Scale returns x multiplied by s in a newly allocated slice.
func Scale(x []float64, s float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	vecmath.ScaleBlock(out, x, s)

	return out
}
