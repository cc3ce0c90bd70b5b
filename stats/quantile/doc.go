// Package quantile estimates quantiles of 8-bit intensity data, either from a
// normalized 256-bin histogram or directly from a set of samples.
//
// The histogram route is what the peak detector uses to derive an adaptive
// per-trace threshold: the threshold for a target active fraction f is the
// quantile at probability 1-f.
//
//	hist := quantile.NewHistogram(section)
//	threshold := quantile.FromHistogram(hist, 1-0.5)
//
// Both estimators interpolate linearly between neighbouring order statistics.
package quantile
