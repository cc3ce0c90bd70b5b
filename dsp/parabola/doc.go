// Package parabola fits degree-2 polynomials y = A + B·x + C·x² to short,
// regularly spaced sample windows with x = 0, 1, ..., len-1.
//
// Two fits are provided:
//
//   - [Fit]: free least-squares fit. Linear and quadratic regressors are
//     centred on the window mean and normalised to unit length, which
//     decouples the two terms numerically.
//   - [FitFixedApex]: least-squares fit anchored at a given sample, used
//     when that sample is already known to be the local maximum. The name
//     refers to the anchor: the slope there stays free, so for asymmetric
//     windows the extremum of the fitted parabola lies off the anchor.
//
// Windows of length 0, 1 and 2 do not determine a parabola and are handled by
// closed-form special cases so that peak filtering always receives a defined
// result:
//
//	len 0: {0, 0, 0}          (flat, never concave)
//	len 1: {v, 0, -1}         (apex on the single sample)
//	len 2: apex on x = 1      (free fit) or on the requested sample
package parabola
