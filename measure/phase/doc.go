// Package phase compares the timing of two peak trains.
//
// A series of peak indices is compared against a reference train. For each
// series peak the nearest reference peak and the local reference period give
// a phase angle 2π·(nearest-peak)/period. The angles are accumulated as unit
// vectors; the length of their mean is the coherence, in [0, 1], and its
// direction the mean phase, in radians.
//
//	c := phase.Correlate(series, reference)
//	fmt.Println(c.Coherence(), phase.Degrees(c.Phase()))
//
// Peak trains are plain ascending index slices as returned by the peaks
// package, or built from a binary peak section with [PositiveIndices].
package phase
