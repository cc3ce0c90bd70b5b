package peaks

import (
	"github.com/cwbudde/algo-peaks/dsp/core"
	"github.com/cwbudde/algo-peaks/stats/quantile"
)

// FindPeaks selects candidates at or above threshold and, if enabled,
// filters them through the parabolic quality check. cfg is normalized
// before use.
func FindPeaks(trace []float64, threshold float64, cfg Config) []int {
	cfg = normalizeConfig(cfg)

	idx := SelectCandidates(trace, threshold, cfg.MinDistance)
	if cfg.DoFiltering {
		idx = FilterCandidates(idx, trace, cfg.filterParams())
	}

	return idx
}

// Detector finds peaks with a fixed, normalized configuration.
// A Detector is immutable and safe for concurrent use.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector from the default configuration modified by
// opts.
func NewDetector(opts ...Option) *Detector {
	return &Detector{cfg: ApplyOptions(opts...)}
}

// NewDetectorFromConfig creates a detector from an explicit configuration.
func NewDetectorFromConfig(cfg Config) *Detector {
	return &Detector{cfg: normalizeConfig(cfg)}
}

// Config returns the normalized configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// Find returns the peaks of trace at or above threshold.
func (d *Detector) Find(trace []float64, threshold float64) []int {
	return FindPeaks(trace, threshold, d.cfg)
}

// Threshold returns the adaptive threshold for an 8-bit section: the
// histogram quantile below which 1-PeakFraction of the samples fall.
// An empty section yields NaN.
func (d *Detector) Threshold(section []int) float64 {
	return quantile.FromHistogram(quantile.NewHistogram(section), 1-d.cfg.PeakFraction)
}

// FindInSection detects peaks in an 8-bit section relative to its adaptive
// threshold. The height criteria of the filter therefore apply to the
// excess above the threshold. Samples are clamped to [0, quantile.Bins-1],
// the range the threshold is computed on.
func (d *Detector) FindInSection(section []int) []int {
	if len(section) == 0 {
		return nil
	}

	threshold := d.Threshold(section)

	shifted := make([]float64, len(section))
	for i, v := range section {
		shifted[i] = float64(core.ClampInt(v, 0, quantile.Bins-1)) - threshold
	}

	return FindPeaks(shifted, 0, d.cfg)
}
