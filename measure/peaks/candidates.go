package peaks

import (
	"cmp"
	"math"
	"slices"
)

// SelectCandidates returns the indices of trace at or above threshold such
// that no two returned indices are closer than minDistance.
//
// Candidates are visited from the tallest down. Each visited candidate is
// kept and suppresses every not yet visited candidate strictly closer than
// minDistance; suppressed candidates are never visited themselves. Equal
// heights are visited in index order. The result is sorted ascending.
//
// A NaN threshold selects nothing; a NaN minDistance suppresses nothing.
func SelectCandidates(trace []float64, threshold, minDistance float64) []int {
	var order []int
	for i, v := range trace {
		if v >= threshold {
			order = append(order, i)
		}
	}

	if len(order) == 0 {
		return nil
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(trace[b], trace[a])
	})

	visited := make([]bool, len(order))
	kept := make([]int, 0, len(order))

	for cur, idx := range order {
		if visited[cur] {
			continue
		}

		visited[cur] = true
		kept = append(kept, idx)

		for other, otherIdx := range order {
			if visited[other] {
				continue
			}

			if math.Abs(float64(otherIdx-idx)) < minDistance {
				visited[other] = true
			}
		}
	}

	slices.Sort(kept)

	return kept
}
