package quantile

import (
	"math"
	"slices"
)

// FromHistogram inverts the cumulative distribution of hist at probability p.
//
// The cumulative sum has one more entry than hist: cumsum[0] = 0 and
// cumsum[k+1] = cumsum[k] + hist[k]/total, with the last entry pinned to 1.
// The result is the coordinate k at which the piecewise-linear cumsum reaches
// p, so a quantile of q means a fraction p of the mass lies below q.
//
// Sentinels: p <= 0 returns -1, p >= 1 returns len(hist). A NaN p, or a
// histogram without positive finite mass, returns NaN.
func FromHistogram(hist Histogram, p float64) float64 {
	if p <= 0 {
		return -1
	}

	if p >= 1 {
		return float64(len(hist))
	}

	total := hist.Total()
	if math.IsNaN(p) || !(total > 0) || math.IsInf(total, 0) {
		return math.NaN()
	}

	cumsum := make([]float64, len(hist)+1)
	for i, v := range hist {
		cumsum[i+1] = cumsum[i] + v/total
	}
	cumsum[len(hist)] = 1

	upper := 0
	for upper < len(hist) && cumsum[upper] < p {
		upper++
	}

	pUpper := cumsum[upper]
	pLower := cumsum[upper-1]
	qUpper := float64(upper)
	qLower := float64(upper - 1)

	// Tied cumulative values mean empty bins; walk back to the last rise.
	if pUpper == pLower {
		for k := upper - 1; k > 0 && pLower == pUpper; {
			k--
			pLower = cumsum[k]
			qLower = float64(k)
		}
	}

	if pLower == pUpper {
		return (qLower + qUpper) / 2
	}

	return qLower + (qUpper-qLower)/(pUpper-pLower)*(p-pLower)
}

// FromValues returns the p-quantile of values using the rank p*(n+1)-1 into
// the sorted samples, interpolating linearly between neighbours. The result
// is truncated to [min(values), max(values)]. values is not modified.
//
// An empty input returns NaN.
func FromValues(values []float64, p float64) float64 {
	if len(values) == 0 || math.IsNaN(p) {
		return math.NaN()
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := len(sorted)
	rank := p*float64(n+1) - 1

	if rank < 0 {
		return sorted[0]
	}

	if rank >= float64(n-1) {
		return sorted[n-1]
	}

	lo := math.Floor(rank)
	i := int(lo)

	return sorted[i] + (sorted[i+1]-sorted[i])*(rank-lo)
}
