// Package peaks finds discrete peak events in a one-dimensional intensity
// trace, such as the temporal profile of one pixel in an image stack.
//
// Detection runs in two stages:
//
//  1. [SelectCandidates] keeps every sample at or above a threshold and
//     greedily suppresses, around the tallest remaining sample, all
//     unvisited samples closer than the minimum distance.
//  2. [FilterCandidates] fits a parabola around each candidate and rejects
//     those whose fit is not concave, too low, too narrow or wide, or whose
//     apex lies too far from the candidate.
//
// [FindPeaks] composes both stages. [Detector] bundles a normalized [Config]
// and adds the adaptive threshold used for 8-bit stacks: the threshold is the
// histogram quantile at 1-PeakFraction, so that roughly PeakFraction of the
// trace lies above it.
//
// [EstimatePeriod] estimates the dominant repetition period of a trace from
// its autocorrelation, which is a useful starting point for MinDistance.
package peaks
