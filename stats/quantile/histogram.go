package quantile

// Bins is the number of histogram bins for 8-bit sample data.
const Bins = 256

// Histogram maps an integer bin to its relative frequency.
// A histogram built from non-empty input sums to 1.
type Histogram []float64

// NewHistogram counts the occurrences of each value in [0, Bins-1] and
// normalizes by the number of samples. Values outside the 8-bit domain are
// clamped to the nearest bin.
//
// An empty input yields an all-zero histogram. FromHistogram treats such a
// histogram as having no mass and returns NaN for interior probabilities.
func NewHistogram(values []int) Histogram {
	counts := make([]int, Bins)
	for _, v := range values {
		counts[clampBin(v)]++
	}

	return normalize(counts, len(values))
}

// HistogramFromBytes is NewHistogram for raw 8-bit pixel data.
func HistogramFromBytes(values []uint8) Histogram {
	counts := make([]int, Bins)
	for _, v := range values {
		counts[v]++
	}

	return normalize(counts, len(values))
}

// Total returns the summed mass of the histogram.
func (h Histogram) Total() float64 {
	var total float64
	for _, v := range h {
		total += v
	}

	return total
}

func normalize(counts []int, total int) Histogram {
	h := make(Histogram, len(counts))
	if total == 0 {
		return h
	}

	n := float64(total)
	for i, c := range counts {
		h[i] = float64(c) / n
	}

	return h
}

func clampBin(v int) int {
	if v < 0 {
		return 0
	}

	if v >= Bins {
		return Bins - 1
	}

	return v
}
