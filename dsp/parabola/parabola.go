package parabola

import (
	"math"

	"github.com/cwbudde/algo-peaks/dsp/core"
)

// singularTolerance bounds the relative size of the fixed-apex normal
// equation determinant below which the system is treated as singular.
const singularTolerance = 1e-12

// Coefficients holds a parabola y = A + B·x + C·x².
type Coefficients struct {
	A, B, C float64
}

// At evaluates the parabola at x.
func (p Coefficients) At(x float64) float64 {
	return p.A + p.B*x + p.C*x*x
}

// Concave reports whether the parabola opens downwards. NaN coefficients
// are never concave.
func (p Coefficients) Concave() bool {
	return p.C < 0
}

// Apex returns the x position of the extremum. ok is false when C is zero
// or the coefficients are not finite.
func (p Coefficients) Apex() (x float64, ok bool) {
	if p.C == 0 || !core.IsFinite(p.B) || !core.IsFinite(p.C) {
		return math.NaN(), false
	}

	return -p.B / (2 * p.C), true
}

// Height returns the parabola value at its apex, or NaN if there is none.
func (p Coefficients) Height() float64 {
	x, ok := p.Apex()
	if !ok {
		return math.NaN()
	}

	return p.At(x)
}

// Valid reports whether all coefficients are finite.
func (p Coefficients) Valid() bool {
	return core.IsFinite(p.A) && core.IsFinite(p.B) && core.IsFinite(p.C)
}

func singular() Coefficients {
	nan := math.NaN()
	return Coefficients{A: nan, B: nan, C: nan}
}

// Fit returns the least-squares parabola through window sampled at
// x = 0..len(window)-1.
func Fit(window []float64) Coefficients {
	n := len(window)

	switch n {
	case 0:
		return Coefficients{}
	case 1:
		return Coefficients{A: window[0], C: -1}
	case 2:
		// v0 = A, v1 = A + B + C, 2C + B = 0.
		v0, v1 := window[0], window[1]
		return Coefficients{A: v0, B: 2*v1 - 2*v0, C: v0 - v1}
	}

	xbar := float64(n-1) / 2

	linear := make([]float64, n)
	quadratic := make([]float64, n)
	for i := range linear {
		d := float64(i) - xbar
		linear[i] = d
		quadratic[i] = d * d
	}

	// Centre the quadratic regressor; the linear one is already zero-mean
	// and, by symmetry, orthogonal to it.
	q2mean := core.Mean(quadratic)
	for i := range quadratic {
		quadratic[i] -= q2mean
	}

	nLinear := core.Norm(linear)
	nQuadratic := core.Norm(quadratic)

	b := core.Dot(window, core.Scale(linear, 1/nLinear)) / nLinear
	c := core.Dot(window, core.Scale(quadratic, 1/nQuadratic)) / nQuadratic

	residual := make([]float64, n)
	for i := range residual {
		d := float64(i) - xbar
		residual[i] = window[i] - b*d - c*d*d
	}
	a := core.Mean(residual)

	// y = a + b(x-xbar) + c(x-xbar)² in the uncentred basis.
	return Coefficients{
		A: a - b*xbar + c*xbar*xbar,
		B: b - 2*c*xbar,
		C: c,
	}
}

// FitFixedApex returns the least-squares parabola anchored at sample apex:
// the fit passes exactly through (apex, window[apex]) and the remaining
// samples determine slope and curvature around it. apex is clamped to
// [0, len(window)-1].
//
// For windows of three or more samples the parabola is written around the
// anchor as v[x] - v[apex] = b·dx + c·dx² with dx = x - apex, and b, c solve
// the 2×2 normal equations built from the power sums of dx. For windows that
// are symmetric about the anchor b vanishes and the extremum coincides with
// it. If the determinant of the system is negligible relative to its terms
// the fit is singular and all coefficients are NaN.
func FitFixedApex(window []float64, apex int) Coefficients {
	n := len(window)
	apex = core.ClampInt(apex, 0, n-1)

	switch n {
	case 0:
		return Coefficients{}
	case 1:
		return Coefficients{A: window[0], C: -1}
	case 2:
		v0, v1 := window[0], window[1]
		if apex == 0 {
			return Coefficients{A: v0, C: v1 - v0}
		}
		// y = v1 + (v0 - v1)(x - 1)².
		return Coefficients{A: v0, B: 2 * (v1 - v0), C: v0 - v1}
	}

	h := window[apex]
	xa := float64(apex)

	dx := make([]float64, n)
	rel := make([]float64, n)
	for i := range dx {
		dx[i] = float64(i) - xa
		rel[i] = window[i] - h
	}

	dx2 := core.Mul(dx, dx)
	dx3 := core.Mul(dx2, dx)
	dx4 := core.Mul(dx3, dx)

	sA := core.Dot(rel, dx)
	sB := core.Sum(dx2)
	sC := core.Sum(dx3)
	sD := core.Dot(rel, dx2)
	sE := core.Sum(dx4)

	// sA = b·sB + c·sC
	// sD = b·sC + c·sE
	// sB, sC and sE depend only on the positions, and E·B > C² for three or
	// more distinct positions (Cauchy-Schwarz). The check only guards the
	// arithmetic against rounding.
	det := sE*sB - sC*sC
	if sB == 0 || !(det > singularTolerance*sE*sB) {
		return singular()
	}

	c := (sD*sB - sA*sC) / det
	b := (sA - c*sC) / sB

	// y = h + b(x-xa) + c(x-xa)² in the uncentred basis.
	return Coefficients{
		A: h - b*xa + c*xa*xa,
		B: b - 2*c*xa,
		C: c,
	}
}
