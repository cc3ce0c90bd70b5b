package peaks

import (
	"math"

	"github.com/cwbudde/algo-peaks/dsp/parabola"
)

// FilterParams holds the quality criteria of the parabolic peak filter.
type FilterParams struct {
	MinDistance float64
	MinWidth    float64
	MaxWidth    float64
	MinHeight   float64
	FitFloor    float64
}

func (cfg Config) filterParams() FilterParams {
	return FilterParams{
		MinDistance: cfg.MinDistance,
		MinWidth:    cfg.MinWidth,
		MaxWidth:    cfg.MaxWidth,
		MinHeight:   cfg.MinHeight,
		FitFloor:    cfg.FitFloor,
	}
}

// FilterCandidates keeps the candidates whose local parabolic fit looks like
// a genuine peak. Survivors are returned in input order.
//
// For a candidate i the fitting window spans floor(i-MinDistance/2) to
// ceil(i+MinDistance/2), clipped to the trace and then shrunk from both ends
// while the boundary sample is below FitFloor, but never past i±1. If trace[i]
// is the window maximum the fit is anchored at i, otherwise it is free.
//
// A candidate is rejected if the fit is not concave, if the apex height H is
// below MinHeight, if the half-width sqrt(-(H-MinHeight)/C) lies outside
// [MinWidth, MaxWidth], or if the apex lies more than MinDistance/2 from i.
// Indices outside the trace are rejected.
func FilterCandidates(candidates []int, trace []float64, params FilterParams) []int {
	kept := make([]int, 0, len(candidates))

	for _, idx := range candidates {
		if acceptCandidate(trace, idx, params) {
			kept = append(kept, idx)
		}
	}

	return kept
}

func acceptCandidate(trace []float64, idx int, params FilterParams) bool {
	if idx < 0 || idx >= len(trace) {
		return false
	}

	lower, upper := fitWindow(trace, idx, params)
	window := trace[lower : upper+1]

	isMaximum := true
	for _, v := range window {
		if v > trace[idx] {
			isMaximum = false
			break
		}
	}

	var (
		fit  parabola.Coefficients
		apex float64
	)

	if isMaximum {
		apex = float64(idx - lower)
		fit = parabola.FitFixedApex(window, idx-lower)
	} else {
		fit = parabola.Fit(window)
		apex = -fit.B / (2 * fit.C)
	}

	if !fit.Concave() {
		return false
	}

	height := fit.At(apex)
	if !(height >= params.MinHeight) {
		return false
	}

	width := math.Sqrt(-(height - params.MinHeight) / fit.C)
	if !(width >= params.MinWidth && width <= params.MaxWidth) {
		return false
	}

	deviation := math.Abs(float64(idx-lower) - apex)

	return deviation <= params.MinDistance/2
}

// fitWindow returns the inclusive bounds of the fitting window around idx.
func fitWindow(trace []float64, idx int, params FilterParams) (lower, upper int) {
	half := params.MinDistance / 2
	last := len(trace) - 1

	lo := math.Floor(float64(idx) - half)
	if !(lo > 0) {
		lo = 0
	}

	hi := math.Ceil(float64(idx) + half)
	if !(hi < float64(last)) {
		hi = float64(last)
	}

	lower, upper = int(lo), int(hi)

	// A negative distance would invert the span.
	lower = min(lower, idx)
	upper = max(upper, idx)

	for lower < idx-1 && trace[lower] < params.FitFloor {
		lower++
	}

	for upper > idx+1 && trace[upper] < params.FitFloor {
		upper--
	}

	return lower, upper
}
