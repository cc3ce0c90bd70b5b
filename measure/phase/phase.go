package phase

import "math"

// Correlation accumulates the phase vectors of a series against a reference.
type Correlation struct {
	// Cos and Sin are the summed in-phase and quadrature components.
	Cos, Sin float64
	// N is the number of series peaks analyzed.
	N int
}

// Coherence returns the length of the mean phase vector, 1 for perfectly
// phase-locked trains and 0 for an empty series.
func (c Correlation) Coherence() float64 {
	if c.N == 0 {
		return 0
	}

	return math.Hypot(c.Cos, c.Sin) / float64(c.N)
}

// Phase returns the direction of the mean phase vector in radians, in
// (-π, π]. It is NaN for an empty series.
func (c Correlation) Phase() float64 {
	if c.N == 0 {
		return math.NaN()
	}

	n := float64(c.N)

	return math.Atan2(c.Sin/n, c.Cos/n)
}

// Correlate computes the phase of every series peak relative to reference
// and accumulates the phase vectors.
//
// A zero local period makes the phase of that peak non-finite, which then
// propagates into the sums.
func Correlate(series, reference []int) Correlation {
	var c Correlation

	for _, pos := range series {
		nearest := Nearest(reference, pos)
		period := Period(reference, pos)

		angle := 2 * math.Pi * float64(nearest-pos) / period

		c.Cos += math.Cos(angle)
		c.Sin += math.Sin(angle)
		c.N++
	}

	return c
}

// Coherence returns the phase-locking strength of series against reference.
func Coherence(series, reference []int) float64 {
	return Correlate(series, reference).Coherence()
}

// MeanPhase returns the mean phase of series against reference in radians.
func MeanPhase(series, reference []int) float64 {
	return Correlate(series, reference).Phase()
}

// Period returns the local reference period at position: the gap between
// the closest reference peak below position and the closest at or above it.
//
// Beyond either end of the reference the gap between the outermost two peaks
// on that side is used. With fewer than two reference peaks, or without a
// second distinct peak on the outer side, the period is 0.
func Period(reference []int, position int) float64 {
	if len(reference) < 2 {
		return 0
	}

	lower, hasLower := maxBelow(reference, position)
	upper, hasUpper := minAtOrAbove(reference, position)

	switch {
	case hasLower && hasUpper:
		return float64(upper - lower)
	case hasLower:
		prev, ok := maxBelow(reference, lower)
		if !ok {
			return 0
		}
		return float64(lower - prev)
	default:
		next, ok := minAtOrAbove(reference, upper+1)
		if !ok {
			return 0
		}
		return float64(next - upper)
	}
}

// Nearest returns the reference peak closest to target, or -1 for an empty
// reference. Of two equally close peaks the smaller index wins.
func Nearest(reference []int, target int) int {
	if len(reference) == 0 {
		return -1
	}

	best := reference[0]
	bestDist := absInt(target - best)

	for _, r := range reference[1:] {
		d := absInt(target - r)
		if d < bestDist || (d == bestDist && r < best) {
			best, bestDist = r, d
		}
	}

	return best
}

func maxBelow(reference []int, position int) (int, bool) {
	found := false
	best := 0

	for _, r := range reference {
		if r < position && (!found || r > best) {
			best, found = r, true
		}
	}

	return best, found
}

func minAtOrAbove(reference []int, position int) (int, bool) {
	found := false
	best := 0

	for _, r := range reference {
		if r >= position && (!found || r < best) {
			best, found = r, true
		}
	}

	return best, found
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
