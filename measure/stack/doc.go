// Package stack applies peak detection and phase analysis to every pixel of
// an in-memory 8-bit image stack.
//
// A [Stack] holds Depth frames of Width×Height pixels; the values of one
// pixel across all frames form its section (temporal trace). The batch
// functions process sections in parallel:
//
//   - [PeakMask] marks detected peaks with 255 in an otherwise zero stack.
//   - [PhaseImage] compares the peak train of every pixel against that of a
//     reference pixel and returns the mean phase in degrees.
//   - [FrequencyImage] converts the peak count of every pixel into beats per
//     minute.
//
// Degenerate pixels (no peaks, no period) produce NaN or zero in their own
// output cell and never abort the batch.
package stack
