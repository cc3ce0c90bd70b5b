package phase

import (
	"math"
	"slices"
)

// Number is the set of sample types a peak section may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// PositiveIndices returns the ascending indices of the positive samples in
// section, turning a binary peak section into a peak train.
func PositiveIndices[T Number](section []T) []int {
	idx := make([]int, 0, CountPositive(section))

	for i, v := range section {
		if v > 0 {
			idx = append(idx, i)
		}
	}

	return idx
}

// CountPositive returns the number of positive samples in section.
func CountPositive[T Number](section []T) int {
	n := 0

	for _, v := range section {
		if v > 0 {
			n++
		}
	}

	return n
}

// MeanPeriod returns the mean gap between consecutive peaks of train, or 0
// for fewer than two peaks. train is not modified.
func MeanPeriod(train []int) float64 {
	if len(train) < 2 {
		return 0
	}

	sorted := slices.Clone(train)
	slices.Sort(sorted)

	// The gaps telescope to last-first.
	return float64(sorted[len(sorted)-1]-sorted[0]) / float64(len(sorted)-1)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// BeatsPerMinute converts a peak count over frames frames recorded at
// frameRate frames per second into a rate per minute. It is 0 when frames or
// frameRate is not positive.
func BeatsPerMinute(peaks, frames int, frameRate float64) float64 {
	if frames <= 0 || !(frameRate > 0) {
		return 0
	}

	return float64(peaks) / float64(frames) * frameRate * 60
}
